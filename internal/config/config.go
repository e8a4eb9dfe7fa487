// Package config loads the site configuration that drives feed generation.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/lepinkainen/post-feed/pkg/feed"
	"github.com/lepinkainen/post-feed/pkg/filesystem"
	"github.com/lepinkainen/post-feed/pkg/posts"
)

// Config holds the site-level settings and the feed options block
type Config struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Language    string `mapstructure:"language"`
	URL         string `mapstructure:"url"`
	Author      string `mapstructure:"author"`

	// Feed options, merged over the defaults
	JSONFeed struct {
		Spec     string `mapstructure:"spec"`     // "rss" or "feed"
		Limit    int    `mapstructure:"limit"`    // Maximum number of posts
		Encoding string `mapstructure:"encoding"` // "json" or "xml"
	} `mapstructure:"jsonfeed"`
}

// LoadConfig loads the configuration from a YAML file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "_config.yml"
	}
	path = filesystem.ResolvePath(path)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("jsonfeed.spec", string(feed.RSS))
	v.SetDefault("jsonfeed.limit", posts.DefaultLimit)
	v.SetDefault("jsonfeed.encoding", string(feed.EncodingJSON))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// FeedConfig converts the loaded settings into the explicit assembler configuration
func (c *Config) FeedConfig() (feed.Config, error) {
	spec, err := feed.ParseSpec(c.JSONFeed.Spec)
	if err != nil {
		return feed.Config{}, err
	}

	return feed.Config{
		Title:       c.Title,
		Description: c.Description,
		Language:    c.Language,
		SiteURL:     c.URL,
		Author:      c.Author,
		Spec:        spec,
		Limit:       c.JSONFeed.Limit,
	}, nil
}

// Encoding returns the validated output encoding
func (c *Config) Encoding() (feed.Encoding, error) {
	return feed.ParseEncoding(c.JSONFeed.Encoding)
}
