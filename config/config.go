package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "config.yaml"
	DefaultPort       = 3001
	DefaultEndpoint   = "https://leetcode.com/graphql/"
	DefaultLimit      = 20
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	LeetCode struct {
		Endpoint     string `yaml:"endpoint"`
		DefaultLimit int    `yaml:"default_limit"` // problems 接口默认条数
		TimeoutSec   int    `yaml:"timeout_sec"`   // 0 表示不设置应用层超时
	} `yaml:"leetcode"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Registry struct {
		UniqueUsernames bool  `yaml:"unique_usernames"` // 是否拒绝重复用户名
		AutoMigrate     *bool `yaml:"auto_migrate"`     // 启动时自动建表，默认开启
	} `yaml:"registry"`
	Timeouts struct {
		ReadSec     int `yaml:"read_sec"`     // 请求读取超时，单位：秒
		WriteSec    int `yaml:"write_sec"`    // 响应写入超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
		ShutdownSec int `yaml:"shutdown_sec"` // 优雅退出等待时间，单位：秒
	} `yaml:"timeouts"`
}

// Load 加载 .env 与 config.yaml，文件不存在时完全依赖环境变量
func Load() *Config {
	// 忽略错误，如果.env文件不存在，继续使用系统环境变量
	_ = godotenv.Load()

	cfg, err := LoadFile(DefaultConfigFile)
	if err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", DefaultConfigFile, err)
		cfg = &Config{}
		cfg.finalize()
	}
	return cfg
}

// LoadFile 从指定 yaml 文件加载配置，并应用环境变量覆盖和默认值
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	log.Printf("Loading configuration from %s", path)

	cfg.finalize()
	return &cfg, nil
}

func (c *Config) finalize() {
	c.applyEnv()
	c.applyDefaults()

	c.Server.Addr = fmt.Sprintf(":%d", c.Server.Port)
	if c.DB.DSN == "" && c.DB.Host != "" {
		c.DB.DSN = c.buildDSN()
	}
}

// applyEnv 敏感信息和数据库位置从环境变量读取
func (c *Config) applyEnv() {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if endpoint := os.Getenv("LEETCODE_ENDPOINT"); endpoint != "" {
		c.LeetCode.Endpoint = endpoint
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		c.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		c.DB.Username = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		c.DB.Database = name
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.DB.DSN = dsn
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.LeetCode.Endpoint == "" {
		c.LeetCode.Endpoint = DefaultEndpoint
	}
	if c.LeetCode.DefaultLimit <= 0 {
		c.LeetCode.DefaultLimit = DefaultLimit
	}
	if c.DB.Port == 0 {
		c.DB.Port = 3306
	}
	if c.DB.Charset == "" {
		c.DB.Charset = "utf8mb4"
	}
	if c.Registry.AutoMigrate == nil {
		enabled := true
		c.Registry.AutoMigrate = &enabled
	}
	if c.Timeouts.ShutdownSec <= 0 {
		c.Timeouts.ShutdownSec = 10
	}
}

func (c *Config) buildDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DB.Username
	mc.Passwd = c.DB.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DB.Host, strconv.Itoa(c.DB.Port))
	mc.DBName = c.DB.Database
	mc.ParseTime = c.DB.ParseTime
	mc.Params = map[string]string{"charset": c.DB.Charset}
	return mc.FormatDSN()
}

// UpstreamTimeout 返回上游请求超时，0 表示使用 http.Client 默认行为
func (c *Config) UpstreamTimeout() time.Duration {
	if c.LeetCode.TimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.LeetCode.TimeoutSec) * time.Second
}

// AutoMigrateEnabled 是否在启动时自动建表
func (c *Config) AutoMigrateEnabled() bool {
	return c.Registry.AutoMigrate == nil || *c.Registry.AutoMigrate
}
