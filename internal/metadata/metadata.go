package metadata

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mintbay/nft-marketplace/internal/config"
	"github.com/mintbay/nft-marketplace/internal/entity"
)

type Service interface {
	FetchMetadata(md entity.TokenMetadata) (map[string]interface{}, error)
}

type service struct {
	client *retryablehttp.Client
}

func NewMetadataService(client *retryablehttp.Client) Service {
	return service{client}
}

func (s service) FetchMetadata(md entity.TokenMetadata) (map[string]interface{}, error) {
	metadataUri, err := md.MetadataUri(config.Get().IpfsHost)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Get(metadataUri)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New(resp.Status)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		return nil, err
	}

	return data, nil
}
