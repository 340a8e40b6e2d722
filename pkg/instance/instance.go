package instance

import "os"

// GetID identifies this process in logs: KIOSK_INSTANCE_ID, then the platform
// dyno or host name, then "local".
func GetID() string {
	for _, key := range []string{"KIOSK_INSTANCE_ID", "DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
