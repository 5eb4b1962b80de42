package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string

	Dataset    string
	Sheet      string
	CostSource string

	Fruits []string
	Unit   string
	Tier   string
	Period string

	Tiers        bool
	Yield        bool
	Distribution bool
	Compare      bool
	Calculator   bool

	Adults   int
	Children int
	Teens    int
	Form     string
	Picked   []string

	ReportName string
	ReportType []string
	Dir        string

	LogLevel  string
	LogFormat string

	AWSProfile string
	AWSRegion  string
	S3Endpoint string

	// Explicit guarda os nomes das flags passadas na linha de comando;
	// apenas elas têm precedência sobre arquivo de configuração e ambiente.
	Explicit map[string]bool
}

// IsExplicit reports whether the flag was given on the command line.
func (a *CLIArgs) IsExplicit(flag string) bool {
	return a.Explicit != nil && a.Explicit[flag]
}
