package config

import (
	"encoding/json"
	"os"

	"github.com/brainkeep/brainkeep/internal/flagx"
	"github.com/brainkeep/brainkeep/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept either strings like "300s" or integer nanoseconds; values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	RefreshInterval    *timex.Duration `json:"refresh_interval"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	EnableUpload       *bool           `json:"enable_upload"`
	StateFile          *string         `json:"state_file"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag, no overlay. Only fields present in the file
// override the defaults. Read or parse errors panic; config problems
// should stop the program before anything else runs.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.EnableUpload != nil {
		cfg.EnableUpload = *jc.EnableUpload
	}
	if jc.StateFile != nil {
		cfg.StateFile = *jc.StateFile
	}
}
