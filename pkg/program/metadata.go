package program

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/google/uuid"
)

// Metadata supplies the environment facts recorded in a program's
// G-code header. Tests inject a fixed implementation to keep output
// deterministic.
type Metadata interface {
	Generator() string
	Host() string
	Author() string
	Timestamp() string
	GeneratedName() string
}

type defaultMetadata struct{}

func (defaultMetadata) Generator() string {
	return "kerf"
}

func (defaultMetadata) Host() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

func (defaultMetadata) Author() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (defaultMetadata) Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (defaultMetadata) GeneratedName() string {
	return fmt.Sprintf("program-%s", uuid.NewString())
}
