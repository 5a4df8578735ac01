package config

// Default local ports for the Spark web UIs.
const (
	DefaultJobUIPort         = 4040
	DefaultJobHistoryUIPort  = 18080
	DefaultWebUIPort         = 8080
	DefaultJupyterPort       = 8888
	DefaultNameNodeUIPort    = 50070
	DefaultRStudioServerPort = 8787
)

// SSHConfig is the resolved configuration of one `cluster ssh` invocation.
// It is built per run and never written back.
type SSHConfig struct {
	ClusterID         string
	Username          string
	JobUIPort         int
	JobHistoryUIPort  int
	WebUIPort         int
	JupyterPort       int
	NameNodeUIPort    int
	RStudioServerPort int
	// Host connects to the node itself instead of the spark container.
	Host bool
	// Connect opens the session; when false only the command is printed.
	Connect bool
}

// Default returns the built-in configuration.
func Default() SSHConfig {
	return SSHConfig{
		JobUIPort:         DefaultJobUIPort,
		JobHistoryUIPort:  DefaultJobHistoryUIPort,
		WebUIPort:         DefaultWebUIPort,
		JupyterPort:       DefaultJupyterPort,
		NameNodeUIPort:    DefaultNameNodeUIPort,
		RStudioServerPort: DefaultRStudioServerPort,
		Connect:           true,
	}
}
