package config

import (
	"fmt"
	"net/url"
	"strings"
)

// DSNValue assembles a MySQL DSN from the database config. An explicit dsn
// field wins over the individual fields.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := strings.TrimSpace(c.User)
	if user == "" {
		user = defaultDBUser
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultDBName
	}
	charset := strings.TrimSpace(c.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := strings.TrimSpace(c.Loc)
	if loc == "" {
		loc = defaultDBLoc
	}

	params := url.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "True")
	params.Set("loc", loc)

	auth := user
	if password := strings.TrimSpace(c.Password); password != "" {
		auth += ":" + password
	}

	return fmt.Sprintf("%s@tcp(%s:%d)/%s?%s", auth, host, port, name, params.Encode())
}
