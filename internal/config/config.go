package config

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	postssdk "github.com/wangdayong228/posts-client/pkg/posts-sdk"
	resourceclient "github.com/wangdayong228/posts-client/pkg/resource-client"
)

// Config 描述命令行客户端所需的全部参数。
type Config struct {
	// 集合地址，例如 https://jsonplaceholder.typicode.com/posts
	BaseURL string        `yaml:"baseUrl" mapstructure:"baseUrl"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// 创建 post 时提交的 userId，jsonplaceholder 要求必须有
	UserID   int64  `yaml:"userId" mapstructure:"userId"`
	LogLevel string `yaml:"logLevel" mapstructure:"logLevel"`
	// 附加到每个请求上的 header
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

func Default() *Config {
	return &Config{
		BaseURL:  postssdk.DefaultBaseURL,
		Timeout:  resourceclient.DefaultTimeout,
		UserID:   1,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// LoadFromFile 从 YAML 文件加载配置，未填写的字段使用 Default 中的值。
// 不打印任何内容，避免混入命令的标准输出。
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "读取配置文件失败: %s", path)
	}

	// viper 默认的 DecodeHook 已包含 string -> time.Duration
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(err, "解析配置文件失败: %s", path)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = d.Timeout
	}
	if c.UserID == 0 {
		c.UserID = d.UserID
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate 在真正发请求前检查明显非法的配置。
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrapf(err, "baseUrl 不合法: %q", c.BaseURL)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.Errorf("baseUrl 必须是绝对地址: %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout 必须大于 0")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "logLevel 不合法")
	}
	return nil
}

// Logger 按 LogLevel 构造 logrus.Logger，调用前应已通过 Validate。
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// ClientOptions 把配置转换为 ResourceClient 的 Option。
func (c *Config) ClientOptions(log logrus.FieldLogger) []resourceclient.Option {
	opts := []resourceclient.Option{
		resourceclient.WithTimeout(c.Timeout),
		resourceclient.WithLogger(log),
	}
	for k, v := range c.Headers {
		opts = append(opts, resourceclient.WithHeader(k, v))
	}
	return opts
}
