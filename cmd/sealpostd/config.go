package main

import (
	"github.com/kelseyhightower/envconfig"
)

var Config struct {
	ListenAddr string `split_words:"true" default:":8080"`
	Store      string `split_words:"true" default:"memory"`
	DataDir    string `split_words:"true" default:"./data"`
	RedisAddr  string `split_words:"true" default:"localhost:6379"`
	RedisDB    int    `split_words:"true" default:"0"`
}

func initConfig() error {
	return envconfig.Process("sealpost", &Config)
}
