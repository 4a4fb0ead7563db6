package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const configPathEnv = "CLASSROOM_CONFIG"

// Config is every knob of an experiment.
type Config struct {
	Students           int     `yaml:"students" validate:"gt=0"`
	VaccinatedFraction float64 `yaml:"vaccinated_fraction" validate:"gte=0,lte=1"`
	VaccineEfficacy    float64 `yaml:"vaccine_efficacy" validate:"gte=0,lte=1"`
	MaskedFraction     float64 `yaml:"masked_fraction" validate:"gte=0,lte=1"`
	MaskEffectiveness  float64 `yaml:"mask_effectiveness" validate:"gte=0,lte=1"`
	Infectiousness     float64 `yaml:"infectiousness" validate:"gte=0,lte=1"`
	SimLength          int     `yaml:"sim_length" validate:"gt=0"`
	Trials             int     `yaml:"trials" validate:"gt=0"`

	// Seed 0 means seed from the clock.
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers" validate:"gte=0"`
	LogDays bool  `yaml:"log_days"`

	OutputCSV  string `yaml:"output_csv"`
	ResultsDSN string `yaml:"results_dsn"`
	LogMode    string `yaml:"log_mode" validate:"omitempty,oneof=dev development prod production"`
}

// DefaultConfig is the reference run: 30 students, half vaccinated, 10k trials of 30 days.
func DefaultConfig() Config {
	return Config{
		Students:           30,
		VaccinatedFraction: 0.5,
		VaccineEfficacy:    1,
		MaskedFraction:     0,
		MaskEffectiveness:  0.5,
		Infectiousness:     0.02,
		SimLength:          30,
		Trials:             10000,
		OutputCSV:          "data/50pcnt_vacc_10k.csv",
		LogMode:            "dev",
	}
}

// LoadConfig layers defaults, the YAML file at path (or $CLASSROOM_CONFIG), .env,
// CLASSROOM_* environment variables and finally overrides. The result is validated once.
func LoadConfig(path string, overrides ...func(*Config)) (Config, error) {
	cfg := DefaultConfig()

	// a missing .env is normal
	_ = godotenv.Load()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(configPathEnv))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"CLASSROOM_STUDENTS", &cfg.Students},
		{"CLASSROOM_SIM_LENGTH", &cfg.SimLength},
		{"CLASSROOM_TRIALS", &cfg.Trials},
		{"CLASSROOM_WORKERS", &cfg.Workers},
	}
	for _, e := range ints {
		v, ok, err := envInt(e.name)
		if err != nil {
			return err
		}
		if ok {
			*e.dst = v
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"CLASSROOM_VACCINATED_FRACTION", &cfg.VaccinatedFraction},
		{"CLASSROOM_VACCINE_EFFICACY", &cfg.VaccineEfficacy},
		{"CLASSROOM_MASKED_FRACTION", &cfg.MaskedFraction},
		{"CLASSROOM_MASK_EFFECTIVENESS", &cfg.MaskEffectiveness},
		{"CLASSROOM_INFECTIOUSNESS", &cfg.Infectiousness},
	}
	for _, e := range floats {
		v, ok, err := envFloat(e.name)
		if err != nil {
			return err
		}
		if ok {
			*e.dst = v
		}
	}

	if v := strings.TrimSpace(os.Getenv("CLASSROOM_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: CLASSROOM_SEED: %v", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(os.Getenv("CLASSROOM_LOG_DAYS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: CLASSROOM_LOG_DAYS: %v", ErrInvalidConfig, err)
		}
		cfg.LogDays = b
	}
	if v := strings.TrimSpace(os.Getenv("CLASSROOM_OUTPUT_CSV")); v != "" {
		cfg.OutputCSV = v
	}
	if v := strings.TrimSpace(os.Getenv("CLASSROOM_RESULTS_DSN")); v != "" {
		cfg.ResultsDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("CLASSROOM_LOG_MODE")); v != "" {
		cfg.LogMode = v
	}
	return nil
}

func envInt(name string) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}
	return i, true, nil
}

func envFloat(name string) (float64, bool, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
	}
	return f, true, nil
}
