package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "time"     // time resolves the business timezone location
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Scheduling is always performed in the business
// timezone, never the server's local zone; Location is resolved once at
// startup so a bad zone name fails fast instead of silently producing wrong
// availability near midnight.
type Config struct {
    Env         string         // application environment (e.g. "dev", "prod")
    Port        string         // HTTP port to listen on
    Timezone    string         // IANA name of the business timezone
    Location    *time.Location // resolved business timezone
    OpenHour    float64        // first bookable half-hour of the day, as a decimal hour
    CloseHour   float64        // end of the business day, exclusive, as a decimal hour
    StoreDriver string         // booking store backend: "file" or "mysql"
    BookingFile string         // path of the JSON booking file (file driver)
    DBUser      string         // database username (mysql driver)
    DBPass      string         // database password (optional)
    DBHost      string         // database host address
    DBPort      string         // database port number
    DBName      string         // database name
    SMTPHost    string         // SMTP relay host for booking notifications
    SMTPPort    string         // SMTP relay port
    SMTPUser    string         // SMTP auth username (empty disables auth)
    SMTPPass    string         // SMTP auth password
    EmailFrom   string         // From address on notification mail
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Everything tied to
// the business calendar defaults to the shop's opening hours.
func Load() Config {
    cfg := Config{
        Env:         must("APP_ENV"),  // environment (dev/test/prod)
        Port:        must("APP_PORT"), // port to bind the HTTP server
        Timezone:    getenv("BUSINESS_TZ", "Europe/Amsterdam"),
        OpenHour:    envFloat("OPEN_HOUR", 11.5), // shop opens 11:30
        CloseHour:   envFloat("CLOSE_HOUR", 19),  // shop closes 19:00
        StoreDriver: getenv("STORE_DRIVER", "file"),
        BookingFile: getenv("BOOKING_FILE", "bookings.json"),
        DBUser:      os.Getenv("DB_USER"),
        DBPass:      os.Getenv("DB_PASS"),
        DBHost:      os.Getenv("DB_HOST"),
        DBPort:      os.Getenv("DB_PORT"),
        DBName:      os.Getenv("DB_NAME"),
        SMTPHost:    os.Getenv("SMTP_HOST"),
        SMTPPort:    getenv("SMTP_PORT", "25"),
        SMTPUser:    os.Getenv("SMTP_USER"),
        SMTPPass:    os.Getenv("SMTP_PASS"),
        EmailFrom:   getenv("EMAIL_FROM", "no-reply@khobkhun-massage.nl"),
    }
    loc, err := time.LoadLocation(cfg.Timezone)
    if err != nil {
        log.Fatalf("invalid BUSINESS_TZ %q: %v", cfg.Timezone, err)
    }
    cfg.Location = loc
    if cfg.StoreDriver == "mysql" {
        // The MySQL driver needs full connection details up front.
        cfg.DBUser = must("DB_USER")
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = must("DB_PORT")
        cfg.DBName = must("DB_NAME")
    }
    if cfg.CloseHour <= cfg.OpenHour {
        log.Fatalf("CLOSE_HOUR (%v) must be after OPEN_HOUR (%v)", cfg.CloseHour, cfg.OpenHour)
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// envFloat is like getenv() but converts the retrieved string into a
// decimal-hour value.  If conversion fails, the application logs a fatal
// error and exits.
func envFloat(key string, d float64) float64 {
    v := os.Getenv(key)
    if v == "" {
        return d
    }
    f, err := strconv.ParseFloat(v, 64)
    if err != nil {
        log.Fatalf("invalid float for %s: %q", key, v)
    }
    return f
}
