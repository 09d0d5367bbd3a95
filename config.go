package tweetvec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes every resource the pipeline loads and how the
// vocabulary and POS features behave. Paths are resolved against the fs.FS
// handed to ResourcesFromFS.
type Config struct {
	Dict      DictConfig        `yaml:"dict" mapstructure:"dict"`
	Slang     []SlangListConfig `yaml:"slang" mapstructure:"slang"`
	Sentiment []ScoreListConfig `yaml:"sentiment" mapstructure:"sentiment"`
	TfIdf     TfIdfConfig       `yaml:"tfidf" mapstructure:"tfidf"`
	POS       POSConfig         `yaml:"pos" mapstructure:"pos"`
	Dataset   *DatasetConfig    `yaml:"dataset,omitempty" mapstructure:"dataset"`
}

// DictConfig lists the plain word list resources.
type DictConfig struct {
	FirstNames    []string `yaml:"firstNames" mapstructure:"firstNames"`
	StopWords     []string `yaml:"stopWords" mapstructure:"stopWords"`
	StopWordsLang string   `yaml:"stopWordsLanguage" mapstructure:"stopWordsLanguage"`
	Lexicon       []string `yaml:"lexicon" mapstructure:"lexicon"`
}

// SlangListConfig describes one slang file. Earlier files win on conflicts.
type SlangListConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
}

// ScoreListConfig describes one sentiment word list.
type ScoreListConfig struct {
	Name            string  `yaml:"name" mapstructure:"name"`
	Path            string  `yaml:"path" mapstructure:"path"`
	Delimiter       string  `yaml:"delimiter" mapstructure:"delimiter"`
	ContainsPOSTags bool    `yaml:"containsPOSTags" mapstructure:"containsPOSTags"`
	Wildcard        bool    `yaml:"wildcard" mapstructure:"wildcard"`
	FeatureScaling  bool    `yaml:"featureScaling" mapstructure:"featureScaling"`
	MinValue        float64 `yaml:"minValue" mapstructure:"minValue"`
	MaxValue        float64 `yaml:"maxValue" mapstructure:"maxValue"`
	Enabled         bool    `yaml:"enabled" mapstructure:"enabled"`
}

func (c ScoreListConfig) options() ScoreListOptions {
	return ScoreListOptions{
		Delimiter:       c.Delimiter,
		ContainsPOSTags: c.ContainsPOSTags,
		FeatureScaling:  c.FeatureScaling,
		MinValue:        c.MinValue,
		MaxValue:        c.MaxValue,
	}
}

// TfIdfConfig configures the vocabulary.
type TfIdfConfig struct {
	Type          string `yaml:"type" mapstructure:"type"`                   // raw, log or bool
	Normalization string `yaml:"normalization" mapstructure:"normalization"` // none or cos
	UsePOSTags    bool   `yaml:"usePOSTags" mapstructure:"usePOSTags"`
}

// POSConfig configures the POS distribution features.
type POSConfig struct {
	Normalize bool `yaml:"normalize" mapstructure:"normalize"`
}

// DatasetConfig describes a delimited file of labeled tweets.
type DatasetConfig struct {
	Path           string   `yaml:"path" mapstructure:"path"`
	Delimiter      string   `yaml:"delimiter" mapstructure:"delimiter"`
	IDIndex        int      `yaml:"idIndex" mapstructure:"idIndex"`
	LabelIndex     int      `yaml:"labelIndex" mapstructure:"labelIndex"`
	TextIndex      int      `yaml:"textIndex" mapstructure:"textIndex"`
	PositiveLabels []string `yaml:"positiveLabels" mapstructure:"positiveLabels"`
	NegativeLabels []string `yaml:"negativeLabels" mapstructure:"negativeLabels"`
	NeutralLabels  []string `yaml:"neutralLabels" mapstructure:"neutralLabels"`
	PositiveValue  float64  `yaml:"positiveValue" mapstructure:"positiveValue"`
	NegativeValue  float64  `yaml:"negativeValue" mapstructure:"negativeValue"`
	NeutralValue   float64  `yaml:"neutralValue" mapstructure:"neutralValue"`
}

// DefaultConfig returns a configuration without any resource files: log
// term frequencies, cosine normalization and normalized POS counts.
func DefaultConfig() Config {
	return Config{
		TfIdf: TfIdfConfig{
			Type:          "log",
			Normalization: "cos",
			UsePOSTags:    true,
		},
		POS: POSConfig{Normalize: true},
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise only fail at load time.
func (c Config) Validate() error {
	if _, err := ParseTfType(c.TfIdf.Type); err != nil {
		return err
	}
	if _, err := ParseNormalization(c.TfIdf.Normalization); err != nil {
		return err
	}
	for _, s := range c.Sentiment {
		if s.Enabled && s.FeatureScaling && s.MaxValue == s.MinValue {
			return fmt.Errorf("sentiment list %s: minValue and maxValue must differ", s.Path)
		}
	}
	return nil
}
