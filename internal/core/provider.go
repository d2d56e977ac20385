package core

import "slices"

// Provider names an OpenAI-compatible language model vendor.
type Provider string

const (
	ProviderDeepseek Provider = "deepseek"
	ProviderQwen     Provider = "qwen"
)

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderDeepseek, ProviderQwen}

var defaultEndpoints = map[Provider]string{
	ProviderDeepseek: "https://api.deepseek.com",
	ProviderQwen:     "https://dashscope.aliyuncs.com/compatible-mode/v1",
}

var defaultModels = map[Provider]string{
	ProviderDeepseek: "deepseek-chat",
	ProviderQwen:     "qwen-plus",
}

// ProviderConfig holds the credentials and target of one provider.
type ProviderConfig struct {
	APIKey   string `json:"apiKey" mapstructure:"apiKey"`
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	Model    string `json:"model,omitempty" mapstructure:"model"`
}

// IsValid reports whether p is a supported provider.
func (p Provider) IsValid() bool {
	return slices.Contains(Providers, p)
}

// DefaultEndpoint returns the API base URL used when none is configured.
func (p Provider) DefaultEndpoint() string {
	return defaultEndpoints[p]
}

// DefaultModel returns the chat model used when none is configured.
func (p Provider) DefaultModel() string {
	return defaultModels[p]
}
