package config

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"baseUrl"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	HMACSecret string `mapstructure:"hmacSecret"`
}

// GatewayCfg holds the hosted payment provider credentials and endpoints.
type GatewayCfg struct {
	ApiUrl          string        `mapstructure:"apiUrl"`
	ConsumerKey     string        `mapstructure:"consumerKey"`
	ConsumerSecret  string        `mapstructure:"consumerSecret"`
	Currency        string        `mapstructure:"currency"`
	CallbackBase    string        `mapstructure:"callbackBase"`
	IPAllowlist     string        `mapstructure:"ipAllowlist"`
	SubmitTimeout   time.Duration `mapstructure:"submitTimeout"`
	RetryTimes      int           `mapstructure:"retryTimes"`
	RetryInterval   time.Duration `mapstructure:"retryInterval"`
	TokenCacheTTL   time.Duration `mapstructure:"tokenCacheTTL"`
	DefaultCountry  string        `mapstructure:"defaultCountry"`
	DefaultDialCode string        `mapstructure:"defaultDialCode"`
}

type PaymentCfg struct {
	ReferencePrefix  string `mapstructure:"referencePrefix"`
	CreateTimeoutSec int    `mapstructure:"createTimeoutSec"`
}

type Root struct {
	Server   ServerCfg   `mapstructure:"server"`
	Mysql    MysqlCfg    `mapstructure:"mysql"`
	RabbitMQ RabbitCfg   `mapstructure:"rabbitmq"`
	Redis    RedisCfg    `mapstructure:"redis"`
	Security SecurityCfg `mapstructure:"security"`
	Gateway  GatewayCfg  `mapstructure:"gateway"`
	Payment  PaymentCfg  `mapstructure:"payment"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}

	// sane defaults
	if strings.TrimSpace(C.Server.Port) == "" {
		C.Server.Port = "8080"
	}
	if C.Payment.ReferencePrefix == "" {
		C.Payment.ReferencePrefix = "CRS"
	}
	if C.Payment.CreateTimeoutSec <= 0 {
		C.Payment.CreateTimeoutSec = 10
	}
	if C.Gateway.Currency == "" {
		C.Gateway.Currency = "KES"
	}
	if C.Gateway.DefaultCountry == "" {
		C.Gateway.DefaultCountry = "KE"
	}
	if C.Gateway.DefaultDialCode == "" {
		C.Gateway.DefaultDialCode = "+254"
	}
	if C.Gateway.SubmitTimeout <= 0 {
		C.Gateway.SubmitTimeout = 10 * time.Second
	}
	if C.Gateway.RetryTimes <= 0 {
		C.Gateway.RetryTimes = 2
	}
	if C.Gateway.RetryInterval <= 0 {
		C.Gateway.RetryInterval = 2 * time.Second
	}
	if C.Gateway.TokenCacheTTL <= 0 {
		C.Gateway.TokenCacheTTL = 4 * time.Minute
	}
	if C.Gateway.CallbackBase == "" {
		C.Gateway.CallbackBase = C.Server.BaseURL
	}
}
