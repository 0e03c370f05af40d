package apiclient

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a curl command line that can be pasted into a shell to
// reproduce it.
func curlCommand(method, url string, header http.Header, body []byte) string {
	var b commandBuilder
	b.add("curl", "-sS", "-X", method)
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range header[k] {
			b.add("-H", k+": "+v)
		}
	}
	if body != nil {
		b.add("--data-raw", string(body))
	}
	b.add(url)
	return b.String()
}
