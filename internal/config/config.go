// Copyright © 2021 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/kaleido-io/payreg/internal/i18n"
	"github.com/spf13/viper"
)

// The following keys can be access from the root configuration.
// Plugins are responsible for defining their own keys using the Prefix interface
var (
	Lang                  RootKey = ark("lang")
	LogLevel              RootKey = ark("log.level")
	LogColor              RootKey = ark("log.color")
	LogUTC                RootKey = ark("log.utc")
	NodeName              RootKey = ark("node.name")
	HTTPAddress           RootKey = ark("http.address")
	HTTPPort              RootKey = ark("http.port")
	HTTPReadTimeout       RootKey = ark("http.readTimeout")
	HTTPWriteTimeout      RootKey = ark("http.writeTimeout")
	CorsEnabled           RootKey = ark("cors.enabled")
	CorsAllowedOrigins    RootKey = ark("cors.origins")
	CorsAllowedMethods    RootKey = ark("cors.methods")
	CorsAllowedHeaders    RootKey = ark("cors.headers")
	CorsAllowCredentials  RootKey = ark("cors.credentials")
	CorsMaxAge            RootKey = ark("cors.maxAge")
	APIRequestTimeout     RootKey = ark("api.requestTimeout")
	APIDefaultEventLimit  RootKey = ark("api.defaultEventLimit")
	APIMaxEventLimit      RootKey = ark("api.maxEventLimit")
	Database              RootKey = ark("database")
	DatabaseType          RootKey = ark("database.type")
	ObjectStore           RootKey = ark("objectstore")
	ObjectStoreType       RootKey = ark("objectstore.type")
	EventTransportsList   RootKey = ark("events.transports")
	EventQueueSize        RootKey = ark("events.queueSize")
	EventRetryInitDelay   RootKey = ark("events.retry.initDelay")
	EventRetryMaxDelay    RootKey = ark("events.retry.maxDelay")
	EventRetryMaxAttempts RootKey = ark("events.retry.maxAttempts")
	RegisterCacheTTL      RootKey = ark("registers.cache.ttl")
	RegisterCacheInterval RootKey = ark("registers.cache.purgeInterval")
)

// Prefix represents the global configuration, at a nested point in
// the config hierarchy. This allows plugins to define their own keys.
//
// Note that all values are GLOBAL so this cannot be used for per-instance
// customization. Rather for global initialization of plugins.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetUint(key string) uint
	GetInt64(key string) int64
	GetByteSize(key string) int64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetObjectArray(key string) []map[string]interface{}
	UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error
	Get(key string) interface{}
}

// RootKey is a configuration key known at the root level
type RootKey string

func Reset() {
	viper.Reset()

	// Set defaults
	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogColor), true)
	viper.SetDefault(string(LogUTC), false)
	viper.SetDefault(string(NodeName), "payreg")
	viper.SetDefault(string(HTTPAddress), "127.0.0.1")
	viper.SetDefault(string(HTTPPort), 5100)
	viper.SetDefault(string(HTTPReadTimeout), "15s")
	viper.SetDefault(string(HTTPWriteTimeout), "15s")
	viper.SetDefault(string(CorsEnabled), true)
	viper.SetDefault(string(CorsAllowedOrigins), []string{"*"})
	viper.SetDefault(string(CorsAllowedMethods), []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete})
	viper.SetDefault(string(CorsAllowedHeaders), []string{"*"})
	viper.SetDefault(string(CorsAllowCredentials), true)
	viper.SetDefault(string(CorsMaxAge), 600)
	viper.SetDefault(string(APIRequestTimeout), "12s")
	viper.SetDefault(string(APIDefaultEventLimit), 25)
	viper.SetDefault(string(APIMaxEventLimit), 250)
	viper.SetDefault(string(DatabaseType), "sqlite3")
	viper.SetDefault(string(ObjectStoreType), "memstore")
	viper.SetDefault(string(EventTransportsList), []string{"websockets"})
	viper.SetDefault(string(EventQueueSize), 50)
	viper.SetDefault(string(EventRetryInitDelay), "250ms")
	viper.SetDefault(string(EventRetryMaxDelay), "30s")
	viper.SetDefault(string(EventRetryMaxAttempts), 5)
	viper.SetDefault(string(RegisterCacheTTL), "30s")
	viper.SetDefault(string(RegisterCacheInterval), "1m")

	i18n.SetLang(GetString(Lang))
}

// ReadConfig initializes the config
func ReadConfig(cfgFile string) error {
	Reset()

	// Set precedence order for reading config location
	viper.SetEnvPrefix("payreg")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("payreg.core")
	viper.AddConfigPath("/etc/payreg/")
	viper.AddConfigPath("$HOME/.payreg")
	viper.AddConfigPath(".")
	return viper.ReadInConfig()
}

var root = &configPrefix{
	keys: map[string]bool{}, // All keys go here, including those defined in sub prefixes
}

// ark adds a root key, used to define the keys that are used within the core
func ark(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// configPrefix is the main config structure passed to plugins, and used for root to wrap viper
type configPrefix struct {
	prefix string
	keys   map[string]bool
}

// NewPluginConfig creates a new plugin configuration object, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix = prefix + "."
	}
	return &configPrefix{
		prefix: prefix,
		keys:   root.keys,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	key := c.prefix + k
	if !c.keys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
		keys:   root.keys,
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	c.keys[key] = true
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	return viper.GetStringSlice(c.prefixKey(key))
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	return viper.GetBool(c.prefixKey(key))
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	return viper.GetInt(c.prefixKey(key))
}

// GetInt64 gets a configuration int64
func GetInt64(key RootKey) int64 {
	return root.GetInt64(string(key))
}
func (c *configPrefix) GetInt64(key string) int64 {
	return viper.GetInt64(c.prefixKey(key))
}

// GetByteSize gets a size in bytes, parsed with human friendly units such as "1Kb" or "32MB"
func GetByteSize(key RootKey) int64 {
	return root.GetByteSize(string(key))
}
func (c *configPrefix) GetByteSize(key string) int64 {
	size, _ := units.RAMInBytes(viper.GetString(c.prefixKey(key)))
	return size
}

// GetDuration gets a duration, parsed from a Go duration string such as "30s"
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	return viper.GetDuration(c.prefixKey(key))
}

// GetObjectArray gets an array of object configuration entries
func GetObjectArray(key RootKey) []map[string]interface{} {
	return root.GetObjectArray(string(key))
}
func (c *configPrefix) GetObjectArray(key string) []map[string]interface{} {
	v := viper.Get(c.prefixKey(key))
	entries, ok := v.([]interface{})
	if !ok {
		return nil
	}
	oa := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if m, ok := e.(map[string]interface{}); ok {
			oa = append(oa, m)
		}
	}
	return oa
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	viper.Set(c.prefixKey(key), value)
}

// UnmarshalKey gets a configuration section into a struct
func UnmarshalKey(ctx context.Context, key RootKey, rawVal interface{}) error {
	return root.UnmarshalKey(ctx, string(key), rawVal)
}
func (c *configPrefix) UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error {
	// Viper's unmarshal does not work with our json annotated config
	// structures, so we have to go from map to JSON, then to unmarshal
	var intermediate map[string]interface{}
	err := viper.UnmarshalKey(c.prefixKey(key), &intermediate)
	if err == nil {
		b, _ := json.Marshal(intermediate)
		err = json.Unmarshal(b, rawVal)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, key)
	}
	return nil
}
