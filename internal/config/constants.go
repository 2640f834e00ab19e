package config

// Default configuration values
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultServiceName     = "idlesect-engine"
	DefaultVersion         = "dev"
	DefaultEnvironment     = "dev"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "idlesect"
	DefaultConfigDir       = "configs"
	DefaultCacheSize       = 1024
	DefaultCacheTTLSeconds = 60
)

// Config file names resolved against ConfigDir
const (
	FileDailyLadder   = "daily_ladder.json"
	FileLevelLadder   = "level_ladder.json"
	FileOfflineRates  = "offline_rates.json"
	FileRewardCatalog = "reward_catalog.json"
	FileFusionRecipes = "fusion_recipes.json"
)

// Schema file names resolved against ConfigDir/schema. Both ladders share
// one schema since their slot shape is identical.
const (
	SchemaDir           = "schema"
	SchemaLadder        = "ladder.schema.json"
	SchemaOfflineRates  = "offline_rates.schema.json"
	SchemaRewardCatalog = "reward_catalog.schema.json"
	SchemaFusionRecipes = "fusion_recipes.schema.json"
)

// Port bounds for validation
const (
	MinPort = 1
	MaxPort = 65535
)
