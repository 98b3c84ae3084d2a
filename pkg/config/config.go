package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP               HTTP
	Logger             Logger
	Postgres           Postgres
	Kafka              Kafka
	TPay               TPay
	Mailer             Mailer
	Jobs               Jobs
	Documents          Documents
	IdentityServiceURL string `env:"IDENTITY_SERVICE_URL"`
}

type HTTP struct {
	Port          int           `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool          `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string        `env:"HTTP_API_KEY" envDefault:"dev"`
	ReadTimeout   time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout  time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"5s"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers                   []string `env:"KAFKA_BROKERS"`
	ConsumerID                string   `env:"KAFKA_CONSUMER_ID" envDefault:"payments"`
	PaymentStatusChangedTopic string   `env:"KAFKA_PAYMENT_STATUS_CHANGED_TOPIC" envDefault:"payment-status-changed"`
}

// TPay holds the payment gateway credentials. MerchantID and Secret default to empty
// so the service still starts; payment initiation then fails with a configuration error.
type TPay struct {
	MerchantID     string   `env:"TPAY_MERCHANT_ID" envDefault:""`
	Secret         string   `env:"TPAY_SECRET" envDefault:""`
	GatewayURL     string   `env:"TPAY_GATEWAY_URL" envDefault:"https://secure.tpay.com"`
	Language       string   `env:"TPAY_LANGUAGE" envDefault:"pl"`
	ReturnURL      string   `env:"TPAY_RETURN_URL"`
	ReturnErrorURL string   `env:"TPAY_RETURN_ERROR_URL"`
	ResultURL      string   `env:"TPAY_RESULT_URL"`
	CallbackIPWL   []string `env:"TPAY_CALLBACK_IP_WL" envDefault:""`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Music School"`
}

// Documents configures the document rendering service client.
type Documents struct {
	URL           string        `env:"DOCUMENTS_SERVICE_URL"`
	RetryAttempts int           `env:"DOCUMENTS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryWaitMin  time.Duration `env:"DOCUMENTS_RETRY_WAIT_MIN" envDefault:"1s"`
	Timeout       time.Duration `env:"DOCUMENTS_TIMEOUT" envDefault:"10s"`
}

type Jobs struct {
	MissingInvoicesInterval time.Duration `env:"JOB_MISSING_INVOICES_INTERVAL" envDefault:"10m"`
	InvoiceRenderTimeout    time.Duration `env:"JOB_INVOICE_RENDER_TIMEOUT" envDefault:"15m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// Confirm configures the confirmation client.
type Confirm struct {
	BackendBaseURL string        `env:"BACKEND_BASE_URL"`
	HomeURL        string        `env:"CONFIRM_HOME_URL" envDefault:"/"`
	Interval       time.Duration `env:"CONFIRM_POLL_INTERVAL" envDefault:"1500ms"`
	MaxAttempts    int           `env:"CONFIRM_MAX_ATTEMPTS" envDefault:"20"`
	RequestTimeout time.Duration `env:"CONFIRM_REQUEST_TIMEOUT" envDefault:"5s"`
	Logger         Logger
}

func NewConfirm(envPath string) (Confirm, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Confirm{}, err
	}

	c, err := env.ParseAsWithOptions[Confirm](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Confirm{}, err
	}

	if c.MaxAttempts <= 0 {
		return Confirm{}, fmt.Errorf("CONFIRM_MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts)
	}

	if c.Interval <= 0 {
		return Confirm{}, fmt.Errorf("CONFIRM_POLL_INTERVAL must be positive, got %s", c.Interval)
	}

	return c, nil
}
