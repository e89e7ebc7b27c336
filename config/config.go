package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultConfigName         = "config"
	defaultMaxRequestBodySize = "1MB"

	// configNameEnv selects an alternative yaml file, e.g. UPKEEP_CONFIG=config.worker
	configNameEnv = "UPKEEP_CONFIG"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Schema controls migration of the tables owned by this service.
	// Devices, users and preferences belong to the platform and are never migrated here.
	Schema struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"schema" yaml:"schema"`

	// SecretKey.Access verifies access tokens issued by the platform auth service
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Conversation configures the external conversation sink used for maintenance notices
	Conversation ConversationConfig `json:"conversation" yaml:"conversation"`

	// Scheduler configures the time-triggered maintenance jobs
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Notification configures message templates and reminder limits
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for device maintenance labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Archive configuration for daily snapshot exports
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ConversationConfig defines the conversation sink and the dispatcher retry policy
type ConversationConfig struct {
	// Endpoint receiving POST {"message": "..."}
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Channel the bot is asked to post into
	ChannelID string `json:"channelId" yaml:"channelId"`

	// Total attempts per message, including the first one
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// Fixed wait between attempts
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`

	// Per-attempt HTTP timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SchedulerConfig defines cron expressions (with seconds field) for each job
type SchedulerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Organization processed by the scheduled jobs; empty means all organizations
	OrganizationID string `json:"organizationId" yaml:"organizationId"`

	// IANA timezone used to decide what "today" is
	Timezone string `json:"timezone" yaml:"timezone"`

	DailyCron      string `json:"dailyCron" yaml:"dailyCron"`
	ReminderCron   string `json:"reminderCron" yaml:"reminderCron"`
	OverdueCron    string `json:"overdueCron" yaml:"overdueCron"`
	RescheduleCron string `json:"rescheduleCron" yaml:"rescheduleCron"`
	SnapshotCron   string `json:"snapshotCron" yaml:"snapshotCron"`

	// Number of tasks processed concurrently within one firing
	Workers int `json:"workers" yaml:"workers"`

	// Upper bound for a single job run
	JobTimeout time.Duration `json:"jobTimeout" yaml:"jobTimeout"`
}

// NotificationConfig defines message presentation and reminder limits
type NotificationConfig struct {
	MaxRemindersPerDay int `json:"maxRemindersPerDay" yaml:"maxRemindersPerDay"`

	// Styles keyed by priority (LOW, MEDIUM, HIGH, CRITICAL)
	Styles map[string]StyleConfig `json:"styles" yaml:"styles"`

	// Base URL of the dashboard, used in "View Details" links
	DashboardURL string `json:"dashboardUrl" yaml:"dashboardUrl"`
}

// StyleConfig is the presentation of one priority in outgoing messages
type StyleConfig struct {
	Emoji         string `json:"emoji" yaml:"emoji"`
	Color         string `json:"color" yaml:"color"`
	DisplayName   string `json:"displayName" yaml:"displayName"`
	PriorityLevel int    `json:"priorityLevel" yaml:"priorityLevel"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ArchiveConfig defines where daily snapshots are exported
type ArchiveConfig struct {
	// gocloud.dev bucket URL, e.g. file:///var/lib/upkeep or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key prefix inside the bucket
	Prefix string `json:"prefix" yaml:"prefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override yaml values.
	// Example: CONVERSATION_MAXRETRIES -> conversation.maxRetries
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func New() (*Config, error) {
	name := defaultConfigName
	if override := strings.TrimSpace(os.Getenv(configNameEnv)); override != "" {
		name = override
	}

	cfg, err := LoadWithEnv[Config](name, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Conversation.MaxRetries <= 0 {
		c.Conversation.MaxRetries = 3
	}
	if c.Conversation.RetryDelay <= 0 {
		c.Conversation.RetryDelay = time.Second
	}
	if c.Conversation.Timeout <= 0 {
		c.Conversation.Timeout = 10 * time.Second
	}

	s := &c.Scheduler
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
	if s.DailyCron == "" {
		s.DailyCron = "0 0 4 * * *"
	}
	if s.ReminderCron == "" {
		s.ReminderCron = "0 0 */2 * * *"
	}
	if s.OverdueCron == "" {
		s.OverdueCron = "0 0 2 * * *"
	}
	if s.RescheduleCron == "" {
		s.RescheduleCron = "0 0 3 * * *"
	}
	if s.SnapshotCron == "" {
		s.SnapshotCron = "0 0 6 * * *"
	}
	if s.Workers <= 0 {
		s.Workers = 4
	}
	if s.JobTimeout <= 0 {
		s.JobTimeout = 30 * time.Minute
	}

	if c.Notification.MaxRemindersPerDay <= 0 {
		c.Notification.MaxRemindersPerDay = 3
	}
}

// Validate rejects configurations the services cannot start with.
func (c *Config) Validate() error {
	if c.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	if _, err := c.Scheduler.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the scheduler timezone.
func (s SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler timezone %q", s.Timezone)
	}

	return loc, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
