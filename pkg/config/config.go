package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	SMS    SMSConfig
	Notify NotifyConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMSConfig configuração do transporte de SMS.
// Provider "simulated" usa o envio simulado (padrão em development);
// "twilio" envia de verdade via API REST da Twilio.
type SMSConfig struct {
	Provider   string
	AccountSID string
	AuthToken  string
	FromNumber string
	SimDelay   time.Duration // atraso do envio simulado
}

// NotifyConfig política dos alertas de dívida.
type NotifyConfig struct {
	Cooldown      time.Duration // espera mínima entre alertas ao mesmo cliente
	Timeout       time.Duration // espera máxima por resposta do transporte
	MaxConcurrent int           // envios simultâneos no "enviar todos"
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, TWILIO_ACCOUNT_SID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "padoca-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMS: SMSConfig{
			Provider:   getString(v, "SMS_PROVIDER", "simulated"),
			AccountSID: getString(v, "TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getString(v, "TWILIO_AUTH_TOKEN", ""),
			FromNumber: getString(v, "TWILIO_PHONE_NUMBER", ""),
			SimDelay:   getDuration(v, "SIM_SEND_DELAY", 1500*time.Millisecond),
		},
		Notify: NotifyConfig{
			Cooldown:      getDuration(v, "NOTIFY_COOLDOWN", 7*24*time.Hour),
			Timeout:       getDuration(v, "NOTIFY_TIMEOUT", 5*time.Second),
			MaxConcurrent: getInt(v, "NOTIFY_MAX_CONCURRENT", 4),
		},
	}

	if cfg.SMS.Provider == "twilio" && (cfg.SMS.AccountSID == "" || cfg.SMS.AuthToken == "" || cfg.SMS.FromNumber == "") {
		return nil, fmt.Errorf("config: SMS_PROVIDER=twilio exige TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN e TWILIO_PHONE_NUMBER")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		if d := v.GetDuration(key); d > 0 {
			return d
		}
	}
	return def
}
