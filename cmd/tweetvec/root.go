package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/tweetvec"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tweetvec",
	Short: "Turn tweets into sparse feature vectors",
	Long: `tweetvec tokenizes and normalizes tweets, scores them against
sentiment word lists and writes LibSVM style feature vectors.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tweetvec.yaml)")
	flags.String("resources", ".", "directory resource paths in the config are relative to")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log loading progress to stderr")
	_ = viper.BindPFlag("resources", flags.Lookup("resources"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger().Error("cannot find home directory", slog.Any("error", err))
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".tweetvec")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("tweetvec")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger().Info("using config file", slog.String("path", viper.ConfigFileUsed()))
	}
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (tweetvec.Config, error) {
	cfg := tweetvec.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid config")
}

func loadResources() (*tweetvec.Resources, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	res, err := tweetvec.ResourcesFromDisk(cfg, viper.GetString("resources"), tweetvec.WithLogger(logger()))
	return res, errors.Wrap(err, "loading resources")
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errors.Wrap(scanner.Err(), "reading input")
}

// readTweets loads the dataset named by path, or by the config when path
// is empty.
func readTweets(res *tweetvec.Resources, path string) ([]tweetvec.Tweet, error) {
	d := res.Config.Dataset
	if d == nil {
		return nil, errors.New("no dataset section in config")
	}
	if path == "" {
		path = d.Path
	}
	if path == "" {
		return nil, errors.New("no dataset path given")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()
	tweets, err := tweetvec.ReadTweets(f, *d, logger())
	return tweets, errors.Wrapf(err, "reading %s", path)
}
