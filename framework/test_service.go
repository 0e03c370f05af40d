package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const healthPath = "/health"

// ServiceInfo is what the service reported from its health resource when the harness started.
type ServiceInfo struct {
	Status string `json:"status"`
}

// awaitService polls the health resource until it answers with status 200, or until the
// timeout elapses. Connection errors are retried; any other status is an immediate error.
func awaitService(client *http.Client, baseURL string, timeout time.Duration, output io.Writer) (ServiceInfo, error) {
	url := baseURL + healthPath
	fmt.Fprintf(output, "Connecting to service at %s", url)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(url)
		if err == nil {
			fmt.Fprintln(output)
			respData, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return ServiceInfo{}, fmt.Errorf("service health check returned status code %d", resp.StatusCode)
			}
			if readErr != nil {
				return ServiceInfo{}, readErr
			}
			if len(respData) == 0 {
				fmt.Fprintf(output, "Health check successful, but service provided no status\n")
				return ServiceInfo{}, nil
			}
			fmt.Fprintf(output, "Health check returned: %s\n", string(respData))
			var info ServiceInfo
			if err := json.Unmarshal(respData, &info); err != nil {
				return ServiceInfo{}, fmt.Errorf("malformed health response from service: %s", string(respData))
			}
			return info, nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return ServiceInfo{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}
