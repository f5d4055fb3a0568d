package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log/logtest"
)

// newTestApp creates an app that reads the environment variables from the map.
func newTestApp(env map[string]string) *app {
	a := app{
		log: logtest.DiscardLogger,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
	return &a
}

// runCommand runs the root command with the args, returning what it wrote to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := newTestApp(nil)
	cmd := a.newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// newEchoServer creates a server that writes the method, X-Test header, and body of requests as json.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
		}
		if len(body) == 0 {
			body = []byte("null")
		}
		resp := map[string]interface{}{
			"method": r.Method,
			"test":   r.Header.Get("X-Test"),
			"body":   json.RawMessage(body),
		}
		json.NewEncoder(w).Encode(resp)
	}
	ts := httptest.NewServer(http.HandlerFunc(h))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetch(t *testing.T) {
	ts := newEchoServer(t)
	fetchTests := []struct {
		name string
		args []string
		want map[string]interface{}
	}{
		{
			name: "get",
			args: []string{"fetch", ts.URL, "-q"},
			want: map[string]interface{}{
				"method": "GET",
				"test":   "",
				"body":   nil,
			},
		},
		{
			name: "post with data and header",
			args: []string{"fetch", ts.URL, "--quiet", "-X", "post", "-H", "X-Test: yes", "-d", "a=1", "-d", "b=bob"},
			want: map[string]interface{}{
				"method": "POST",
				"test":   "yes",
				"body":   map[string]interface{}{"a": 1.0, "b": "bob"},
			},
		},
	}
	for _, test := range fetchTests {
		t.Run(test.name, func(t *testing.T) {
			out, err := runCommand(t, test.args...)
			if err != nil {
				t.Fatalf("unwanted error: %v", err)
			}
			var got map[string]interface{}
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decoding output %q: %v", out, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("output (-want +got):\n%v", diff)
			}
		})
	}
}

func TestFetchErrors(t *testing.T) {
	ts := newEchoServer(t)
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer empty.Close()
	fetchErrorsTests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name: "missing url",
			args: []string{"fetch", "-q"},
		},
		{
			name:    "relative url",
			args:    []string{"fetch", "/channels", "-q"},
			wantErr: backend.ErrInvalidURL,
		},
		{
			name:    "invalid method",
			args:    []string{"fetch", ts.URL, "-q", "-X", "TRACE"},
			wantErr: backend.ErrInvalidMethod,
		},
		{
			name:    "no data",
			args:    []string{"fetch", empty.URL, "-q"},
			wantErr: backend.ErrNoData,
		},
		{
			name: "invalid header",
			args: []string{"fetch", ts.URL, "-q", "-H", "X-Test"},
		},
	}
	for _, test := range fetchErrorsTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runCommand(t, test.args...)
			switch {
			case err == nil:
				t.Error("wanted error")
			case test.wantErr != nil && !errors.Is(err, test.wantErr):
				t.Errorf("wanted %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestChannels(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["general","random"]`))
	}))
	defer ts.Close()
	out, err := runCommand(t, "channels", ts.URL+"/channels", "-q")
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	if want := "general\nrandom\n"; want != out {
		t.Errorf("outputs not equal:\nwanted: %q\ngot:    %q", want, out)
	}
}

func TestChannelsDecodingError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"channels":["general"]}`))
	}))
	defer ts.Close()
	_, err := runCommand(t, "channels", ts.URL, "-q")
	var de *backend.DecodingError
	if !errors.As(err, &de) {
		t.Errorf("wanted DecodingError, got %v", err)
	}
}

func TestVerboseEnvironmentVariable(t *testing.T) {
	verboseTests := []struct {
		env  map[string]string
		want string
	}{
		{
			want: "false",
		},
		{
			env:  map[string]string{"GSKIT_VERBOSE": ""},
			want: "true",
		},
	}
	for i, test := range verboseTests {
		a := newTestApp(test.env)
		cmd := a.newRootCommand()
		f := cmd.PersistentFlags().Lookup("verbose")
		if f == nil {
			t.Fatalf("Test %v: verbose flag missing", i)
		}
		if test.want != f.DefValue {
			t.Errorf("Test %v: verbose defaults not equal: wanted %v, got %v", i, test.want, f.DefValue)
		}
	}
}
