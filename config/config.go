package config

var Conf Config

type Config struct {
	Application Application `yaml:"application" json:"application"`
}

type Application struct {
	DisplayName string     `yaml:"display-name" json:"display_name"`
	Server      Server     `yaml:"server" json:"server"`
	Datasource  Datasource `yaml:"datasource" json:"datasource"`
	Migration   string     `yaml:"migration"`
	Security    Security   `yaml:"security" json:"security"`
	Redis       Redis      `yaml:"redis" json:"redis"`
	Kafka       Kafka      `yaml:"kafka" json:"kafka"`
	Captcha     Captcha    `yaml:"captcha" json:"captcha"`
	Trust       Trust      `yaml:"trust" json:"trust"`
}

type Server struct {
	ContextPath string `yaml:"context-path" json:"context_path"`
	ApiVersion  string `yaml:"api-version" json:"api_version"`
	Port        string `yaml:"port"`
}

type Datasource struct {
	PrimaryURL            string `yaml:"primary-url" json:"primary_url"`
	MaxIdleConnections    int    `yaml:"max-idle-connections" json:"max_idle_connections"`
	MaxOpenConnections    int    `yaml:"max-open-connections" json:"max_open_connections"`
	ConnectionMaxLifetime int    `yaml:"connection-max-lifetime" json:"connection_max_lifetime"`
}

type Security struct {
	Secret                 string `yaml:"secret" json:"-"`
	Issuer                 string `yaml:"issuer" json:"issuer"`
	TokenValidityInSeconds int    `yaml:"token-validity-in-seconds" json:"token_validity_in_seconds"`
}

type Redis struct {
	Host string `yaml:"address" json:"address"`
}

type Kafka struct {
	Brokers              []string `yaml:"brokers" json:"brokers"`
	SuspiciousLoginTopic string   `yaml:"suspicious-login-topic" json:"suspicious_login_topic"`
}

// Captcha selects the challenge strategy: "code" serves self-hosted code
// challenges, "recaptcha" forwards proof tokens to the external verify URL.
type Captcha struct {
	Strategy          string  `yaml:"strategy" json:"strategy"`
	VerifyURL         string  `yaml:"verify-url" json:"verify_url"`
	Secret            string  `yaml:"secret" json:"-"`
	ScoreThreshold    float64 `yaml:"score-threshold" json:"score_threshold"`
	ValidityInSeconds int     `yaml:"validity-in-seconds" json:"validity_in_seconds"`
}

type Trust struct {
	ThresholdKm float64 `yaml:"threshold-km" json:"threshold_km"`
}
