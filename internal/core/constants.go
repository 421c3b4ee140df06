package core

import "time"

// Model key constants
const (
	ModelSDXL = "sdxl"
	ModelQwen = "qwen"
	ModelFlux = "flux"

	// ModelLegacy tags results of the legacy single-list generator.
	ModelLegacy = "legacy"
)

// Selector sentinel constants
const (
	SelectorRandom = "random"
	SelectorAll    = "all"
	SelectorNone   = "none"
)

// Subject category constants
const (
	CategoryObject    = "object"
	CategoryAnimal    = "animal"
	CategoryHumanoid  = "humanoid"
	CategoryLandscape = "landscape"
	CategoryConcept   = "concept"
)

// Generation defaults
const (
	DefaultModel    = ModelSDXL
	DefaultInsanity = 5
	MaxInsanity     = 10
)

// Default config constants
const (
	DefaultPort      = "5000"
	DefaultGinMode   = "release"
	DefaultRateLimit = 120
	DefaultRateBurst = 20
	CORSMaxAge       = "86400"

	// DefaultCORSOrigin is the browser origin allowed when CORS_ORIGINS is unset.
	DefaultCORSOrigin = "http://localhost:3000"
	CORSWildcard      = "*"
)

// Content type and header constants
const (
	ContentTypeJSON     = "application/json"
	ContentTypeHTML     = "text/html; charset=utf-8"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	ContextKeyRequestID = "request_id"
)

// HTTP server timeouts
const (
	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerShutdownTimeout   = 30 * time.Second
)

// Request body size limit
const (
	MaxBodySize = 1 << 20
)

// Stats and monitoring constants
const (
	StatsFilePath     = "stats.json"
	StatsRedisKey     = "onebuttonprompt:stats"
	MinSaveInterval   = 5 * time.Second
	HistoryBufferSize = 1000
)

// Logging config constants
const (
	MaxDebugFilePathLength = 260
)

// File permission constants
const (
	FilePermissionReadWrite = 0644
)

// Time format constants
const (
	TimeFormatDateTime = "2006-01-02 15:04:05"
)
