package config

import (
	"log"

	"github.com/spf13/viper"

	"geosuggest/mapping"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Suggest SuggestConfig
}

type ServerConfig struct {
	Addr string
}

type DBConfig struct {
	User     string
	Password string
	DBName   string
	SSLMode  string
	Host     string
	Port     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SuggestConfig struct {
	// DefaultPrecision is the geohash length used when a query context
	// does not specify one.
	DefaultPrecision int
	// IndexPrecision is the geohash length suggestion cells are indexed at.
	IndexPrecision int
	// MaxResults caps the number of suggestions a query returns.
	MaxResults int
	// Technique is the candidate expansion used when a query does not name
	// one: "cells" or "spatial".
	Technique string
}

var Cfg *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("suggest.defaultprecision", mapping.DefaultPrecision())
	viper.SetDefault("suggest.indexprecision", mapping.DefaultPrecision())
	viper.SetDefault("suggest.maxresults", 10)
	viper.SetDefault("suggest.technique", "cells")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	err = viper.Unmarshal(&Cfg)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
