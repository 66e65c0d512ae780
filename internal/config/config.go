package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Port     int      `koanf:"port"`
	Frontend Frontend `koanf:"frontend"`
	Demo     Demo     `koanf:"demo"`
	Auth     Auth     `koanf:"auth"`
	Cors     Cors     `koanf:"cors"`
	Database Database `koanf:"db"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Demo selects the in-memory mode: repositories preloaded with the demo
// dataset and an authenticator that accepts any credentials. All data resets
// on restart.
type Demo struct {
	Enabled bool `koanf:"enabled"`
}

type Auth struct {
	Secret             string `koanf:"secret"`
	RefreshSecret      string `koanf:"refreshsecret"`
	AccessTokenMinutes int    `koanf:"accesstokenminutes"`
	RefreshTokenDays   int    `koanf:"refreshtokendays"`
}

type Cors struct {
	Origins []string `koanf:"origins"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Port: 8080,
		Frontend: Frontend{
			Enabled: true,
		},
		Demo: Demo{
			Enabled: true,
		},
		Auth: Auth{
			Secret:             "globetrotter-dev-secret",
			RefreshSecret:      "globetrotter-dev-refresh-secret",
			AccessTokenMinutes: 15,
			RefreshTokenDays:   7,
		},
		Cors: Cors{
			Origins: []string{"http://localhost:3000"},
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "globetrotter",
			Pass:   "",
			Name:   "globetrotter",
			Schema: "globetrotter",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "GLOBETROTTER_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "GLOBETROTTER_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
