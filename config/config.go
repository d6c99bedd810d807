package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// 情感分析引擎
const (
	SentimentEngineGemini = "gemini"
	SentimentEngineLegacy = "legacy"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	Port            string
	APIBaseURL      string        // 主后端 REST API
	ModelAPIURL     string        // 模型推理服务
	SentimentEngine string        // gemini 或 legacy
	PageSize        int           // 帖子列表固定页大小
	APITimeout      time.Duration // 0 表示不设超时
	SessionSecret   string        // 非空时使用签名令牌保存会话
	SessionMaxAge   int
	CookieSecure    bool
	MaxUploadBytes  int64
	AllowedOrigins  []string
	LogLevel        string
	LogFile         string
	OtelEndpoint    string
	Debug           bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	AppConfig = Load()

	if err := validateConfig(AppConfig); err != "" {
		log.Fatal(err)
	}

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。后端：%s，模型服务：%s（%s）", AppConfig.APIBaseURL, AppConfig.ModelAPIURL, AppConfig.SentimentEngine)
}

// Load 从环境变量中读取配置
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api"), "/"),
		ModelAPIURL:     strings.TrimRight(getEnv("MODEL_API_URL", "http://localhost:8001/api"), "/"),
		SentimentEngine: strings.ToLower(getEnv("SENTIMENT_ENGINE", SentimentEngineGemini)),
		PageSize:        getEnvAsInt("PAGE_SIZE", 20),
		APITimeout:      getEnvAsDuration("API_TIMEOUT", 0),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionMaxAge:   getEnvAsInt("SESSION_MAX_AGE", 365*24*60*60),
		CookieSecure:    getEnvAsBool("COOKIE_SECURE", false),
		MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10<<20)),
		AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		OtelEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Debug:           getEnvAsBool("DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(key, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsList(key string, defaultVal []string) []string {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// validateConfig 返回第一条配置错误，配置合法时返回空字符串
func validateConfig(cfg Config) string {
	for name, raw := range map[string]string{"API_BASE_URL": cfg.APIBaseURL, "MODEL_API_URL": cfg.ModelAPIURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "错误：" + name + " 不是合法的URL"
		}
	}
	if cfg.SentimentEngine != SentimentEngineGemini && cfg.SentimentEngine != SentimentEngineLegacy {
		return "错误：SENTIMENT_ENGINE 只能是 gemini 或 legacy"
	}
	if cfg.PageSize <= 0 {
		return "错误：PAGE_SIZE 必须大于0"
	}
	return ""
}
