package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=50051"`
	MetricsPort          int           `env:"METRICS_PORT,default=9090"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=1024"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=500ms"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=1s"`
	MuteUnit             time.Duration `env:"MUTE_UNIT,default=1s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	NormalizeObfuscation bool          `env:"NORMALIZE_OBFUSCATION,default=false"`
	CensoredWordsFile    string        `env:"CENSORED_WORDS_FILE"`
	AdminHandles         string        `env:"ADMIN_HANDLES"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Admins splits ADMIN_HANDLES on commas, dropping blanks and duplicates.
func (c Config) Admins() []string {
	handles := lo.Map(strings.Split(c.AdminHandles, ","), func(h string, _ int) string {
		return strings.TrimSpace(h)
	})
	return lo.Uniq(lo.Compact(handles))
}
