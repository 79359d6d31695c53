package elastic_search

import (
	"github.com/mintbay/nft-marketplace/internal/entity"
	"go.uber.org/zap"
)

func mergeRequests(index string, cached Request, action RequestAction, e entity.Entity) entity.Entity {
	switch {
	case index == ActionIndex.Get():
		return cached.Entity.(entity.MarketAction)

	case index == MetadataIndex.Get():
		result := cached.Entity.(entity.TokenMetadata)
		if action == MetadataRefresh {
			result.Attempted = e.(entity.TokenMetadata).Attempted
			result.Error = e.(entity.TokenMetadata).Error
			result.Data = e.(entity.TokenMetadata).Data
		} else {
			result = e.(entity.TokenMetadata)
		}
		return result

	case index == ErrorIndex.Get():
		// Error slugs are unique, nothing to merge
		return e
	}

	zap.L().With(zap.String("index", index)).Warn("ElasticCache: Unmergeable index")

	return e
}
