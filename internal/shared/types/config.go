package types

// Config represents the application configuration that can be loaded from a file
// and overlaid by PRODUCE_* environment variables.
type Config struct {
	Dataset    string   `json:"dataset" yaml:"dataset" toml:"dataset"`
	Sheet      string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	CostSource string   `json:"cost_source" yaml:"cost_source" toml:"cost_source"`
	Fruits     []string `json:"fruits" yaml:"fruits" toml:"fruits"`
	Unit       string   `json:"unit" yaml:"unit" toml:"unit"`
	Tier       string   `json:"tier" yaml:"tier" toml:"tier"`
	Period     string   `json:"period" yaml:"period" toml:"period"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	LogLevel   string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat  string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	AWSProfile string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion  string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	S3Endpoint string   `json:"s3_endpoint" yaml:"s3_endpoint" toml:"s3_endpoint"`
}
