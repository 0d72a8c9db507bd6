package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Ranker     RankerConfig     `yaml:"ranker"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	LLM        LLMConfig        `yaml:"llm"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// Only used when the feedback backend is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LexiconConfig points at an Open English WordNet JSON distribution.
type LexiconConfig struct {
	WordNetDir string `yaml:"wordnet_dir" env:"WORDNET_DIR" env-default:"./data/oewn"`
}

// EmbeddingConfig holds sentence-embedding model settings.
type EmbeddingConfig struct {
	Backend       string `yaml:"backend"        env:"EMBEDDING_BACKEND"        env-default:"onnx"`
	OrtLibrary    string `yaml:"ort_library"    env:"EMBEDDING_ORT_LIB"`
	ModelPath     string `yaml:"model_path"     env:"EMBEDDING_MODEL_PATH"     env-default:"./models/all-mpnet-base-v2/model.onnx"`
	TokenizerPath string `yaml:"tokenizer_path" env:"EMBEDDING_TOKENIZER_PATH" env-default:"./models/all-mpnet-base-v2/tokenizer.json"`
	MaxSeqLen     int    `yaml:"max_seq_len"    env:"EMBEDDING_MAX_SEQ_LEN"    env-default:"128"`
	Dimension     int    `yaml:"dimension"      env:"EMBEDDING_DIMENSION"      env-default:"768"`
}

// RankerConfig holds synonym ranking settings.
type RankerConfig struct {
	TopN int `yaml:"top_n" env:"RANKER_TOP_N" env-default:"5"`
}

// DictionaryConfig holds dictionary enrichment API settings.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"FREE_DICTIONARY_API" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// LLMConfig holds LLM gateway settings.
type LLMConfig struct {
	Backend        string        `yaml:"backend"         env:"LLM_BACKEND"         env-default:"hfinference"`
	HFToken        string        `yaml:"hf_token"        env:"HF_API_TOKEN"`
	PredictiveURL  string        `yaml:"predictive_url"  env:"LLM_PREDICTIVE_URL"  env-default:"https://api-inference.huggingface.co/models/bigcode/starcoder"`
	GenerativeURL  string        `yaml:"generative_url"  env:"LLM_GENERATIVE_URL"  env-default:"https://api-inference.huggingface.co/models/bigscience/T0_3B"`
	Timeout        time.Duration `yaml:"timeout"         env:"LLM_TIMEOUT"         env-default:"30s"`
	AnthropicKey   string        `yaml:"anthropic_key"   env:"ANTHROPIC_API_KEY"`
	AnthropicModel string        `yaml:"anthropic_model" env:"LLM_ANTHROPIC_MODEL" env-default:"claude-3-5-haiku-latest"`

	PredictMaxTokens  int     `yaml:"predict_max_tokens"  env:"LLM_PREDICT_MAX_TOKENS"  env-default:"50"`
	GenerateMaxTokens int     `yaml:"generate_max_tokens" env:"LLM_GENERATE_MAX_TOKENS" env-default:"60"`
	Temperature       float64 `yaml:"temperature"         env:"LLM_TEMPERATURE"         env-default:"0.7"`
}

// FeedbackConfig selects and configures the like-counter backend.
type FeedbackConfig struct {
	Backend  string `yaml:"backend"   env:"FEEDBACK_BACKEND"   env-default:"file"`
	Path     string `yaml:"path"      env:"FEEDBACK_PATH"      env-default:"user_feedback.json"`
	BoltPath string `yaml:"bolt_path" env:"FEEDBACK_BOLT_PATH" env-default:"feedback.db"`
}

// Feedback backend names.
const (
	FeedbackBackendFile     = "file"
	FeedbackBackendBolt     = "bolt"
	FeedbackBackendPostgres = "postgres"
)

// Embedding backend names. "none" skips loading a model.
const (
	EmbeddingBackendONNX = "onnx"
	EmbeddingBackendNone = "none"
)

// LLM backend names.
const (
	LLMBackendHFInference = "hfinference"
	LLMBackendAnthropic   = "anthropic"
)
