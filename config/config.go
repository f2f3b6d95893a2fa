package config

import (
	"errors"
	"flag"
	"net"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DBUrl       string
	UploadDir   string
	DraftDir    string
	TokenSecret string
	TokenTTL    time.Duration
	AdminUser   string
	AdminPass   string
	Debug       bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "questionnaire.sqlite", "path to SQLite3 DB file (default questionnaire.sqlite)")
	flag.StringVar(&cfg.UploadDir, "upload-dir", "uploads", "directory for uploaded file content (default uploads)")
	flag.StringVar(&cfg.DraftDir, "draft-dir", "drafts", "directory for local draft snapshots (default drafts)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 120, "token TTL in seconds (default 120)")
	flag.StringVar(&cfg.AdminUser, "admin-user", "", "admin username to seed at startup")
	flag.StringVar(&cfg.AdminPass, "admin-pass", "", "admin password to seed at startup")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
	}
	if cfg.AdminUser != "" && cfg.AdminPass == "" {
		err = errors.New("missing parameter -admin-pass")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
