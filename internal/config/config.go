package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mintbay/nft-marketplace/internal/log"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Env     string
	Network string
	Index   string
	Debug   bool
	Reindex bool

	ApiPort    string
	HealthPort string

	Market MarketConfig

	MetadataRetries int
	IpfsHost        string
	IpfsTimeout     int

	ElasticSearch ElasticSearchConfig
	Aws           AwsConfig
}

type MarketConfig struct {
	Address    string
	FeeAccount string
	FeePercent uint64

	CollectionAddress string
	CollectionName    string
	CollectionSymbol  string
}

type AwsConfig struct {
	AccessKey string
	SecretKey string
	Region    string
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
	AwsSigned        bool
}

func Init(app string) {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().With(zap.Error(err)).Warn("No .env file loaded")
	}

	viper.AutomaticEnv()
	setDefaults()

	log.NewLogger(fmt.Sprintf("logs/%s.log", app), Get().Debug)
}

func setDefaults() {
	viper.SetDefault("ENV", "dev")
	viper.SetDefault("NETWORK", "local")
	viper.SetDefault("INDEX_NAME", "marketplace")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("REINDEX", false)

	viper.SetDefault("API_PORT", "8080")
	viper.SetDefault("HEALTH_PORT", "8090")

	viper.SetDefault("MARKET_ADDRESS", "0x6d61726b6574")
	viper.SetDefault("FEE_ACCOUNT", "0x6465706c6f796572")
	viper.SetDefault("FEE_PERCENT", 1)
	viper.SetDefault("COLLECTION_ADDRESS", "0x6e6674")
	viper.SetDefault("COLLECTION_NAME", "My nft")
	viper.SetDefault("COLLECTION_SYMBOL", "MN")

	viper.SetDefault("METADATA_RETRIES", 3)
	viper.SetDefault("IPFS_HOST", "https://gateway.pinata.cloud")
	viper.SetDefault("IPFS_TIMEOUT", 10)

	viper.SetDefault("ELASTIC_SEARCH_HOSTS", []string{"http://127.0.0.1:9200"})
	viper.SetDefault("ELASTIC_SEARCH_SNIFF", false)
	viper.SetDefault("ELASTIC_SEARCH_HEALTH_CHECK", false)
	viper.SetDefault("ELASTIC_SEARCH_DEBUG", false)
	viper.SetDefault("ELASTIC_SEARCH_MAPPING_DIR", "data/mappings")
	viper.SetDefault("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300)
	viper.SetDefault("ELASTIC_SEARCH_REFRESH", "wait_for")
	viper.SetDefault("ELASTIC_SEARCH_AWS_SIGNED", false)
}

func Get() *Config {
	return &Config{
		Env:     viper.GetString("ENV"),
		Network: viper.GetString("NETWORK"),
		Index:   viper.GetString("INDEX_NAME"),
		Debug:   viper.GetBool("DEBUG"),
		Reindex: viper.GetBool("REINDEX"),

		ApiPort:    viper.GetString("API_PORT"),
		HealthPort: viper.GetString("HEALTH_PORT"),

		Market: MarketConfig{
			Address:           viper.GetString("MARKET_ADDRESS"),
			FeeAccount:        viper.GetString("FEE_ACCOUNT"),
			FeePercent:        viper.GetUint64("FEE_PERCENT"),
			CollectionAddress: viper.GetString("COLLECTION_ADDRESS"),
			CollectionName:    viper.GetString("COLLECTION_NAME"),
			CollectionSymbol:  viper.GetString("COLLECTION_SYMBOL"),
		},

		MetadataRetries: viper.GetInt("METADATA_RETRIES"),
		IpfsHost:        viper.GetString("IPFS_HOST"),
		IpfsTimeout:     viper.GetInt("IPFS_TIMEOUT"),

		ElasticSearch: ElasticSearchConfig{
			Hosts:            viper.GetStringSlice("ELASTIC_SEARCH_HOSTS"),
			Sniff:            viper.GetBool("ELASTIC_SEARCH_SNIFF"),
			HealthCheck:      viper.GetBool("ELASTIC_SEARCH_HEALTH_CHECK"),
			Debug:            viper.GetBool("ELASTIC_SEARCH_DEBUG"),
			Username:         viper.GetString("ELASTIC_SEARCH_USERNAME"),
			Password:         viper.GetString("ELASTIC_SEARCH_PASSWORD"),
			MappingDir:       viper.GetString("ELASTIC_SEARCH_MAPPING_DIR"),
			BulkPersistCount: viper.GetInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT"),
			Refresh:          viper.GetString("ELASTIC_SEARCH_REFRESH"),
			AwsSigned:        viper.GetBool("ELASTIC_SEARCH_AWS_SIGNED"),
		},

		Aws: AwsConfig{
			AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("AWS_SECRET_KEY_ID"),
			Region:    viper.GetString("AWS_REGION"),
		},
	}
}
