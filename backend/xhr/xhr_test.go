//go:build js && wasm

package xhr

import (
	"context"
	"errors"
	"syscall/js"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gspinelli/gskit/backend"
	"github.com/gspinelli/gskit/log/logtest"
)

func TestNewDispatcher(t *testing.T) {
	newDispatcherTests := []struct {
		Config
		dom    DOM
		wantOk bool
	}{
		{},
		{
			dom: new(mockDOM),
			Config: Config{
				Timeout: -1,
			},
		},
		{
			dom:    new(mockDOM),
			wantOk: true,
		},
	}
	for i, test := range newDispatcherTests {
		_, err := test.Config.NewDispatcher(test.dom, logtest.DiscardLogger)
		if test.wantOk != (err == nil) {
			t.Errorf("Test %v: wanted ok: %v, got error: %v", i, test.wantOk, err)
		}
	}
}

func TestDispatch(t *testing.T) {
	dispatchTests := []struct {
		name               string
		cfg                backend.RequestConfig
		extra              *backend.Header
		eventType          string
		responseBody       string
		want               string
		wantErr            error
		wantTransportErr   bool
		wantOpenMethod     string
		wantRequestHeaders map[string]string
		wantBody           interface{}
	}{
		{
			name:    "invalid url",
			cfg:     backend.RequestConfig{Path: "/channels"},
			wantErr: backend.ErrInvalidURL,
		},
		{
			name:             "timeout",
			cfg:              backend.RequestConfig{Path: "https://example.com"},
			eventType:        "timeout",
			wantTransportErr: true,
			wantOpenMethod:   "GET",
		},
		{
			name:             "error",
			cfg:              backend.RequestConfig{Path: "https://example.com"},
			eventType:        "error",
			wantTransportErr: true,
			wantOpenMethod:   "GET",
		},
		{
			name:           "no data",
			cfg:            backend.RequestConfig{Path: "https://example.com"},
			eventType:      "load",
			wantErr:        backend.ErrNoData,
			wantOpenMethod: "GET",
		},
		{
			name: "load",
			cfg: backend.RequestConfig{
				Path:    "https://example.com/channels",
				Method:  backend.MethodPost,
				Params:  backend.Params{"a": backend.Int(1)},
				Headers: map[string]string{"Authorization": "Bearer s3cr3t"},
			},
			extra:          &backend.Header{Key: "Authorization", Value: "Bearer extra"},
			eventType:      "load",
			responseBody:   `["general"]`,
			want:           `["general"]`,
			wantOpenMethod: "POST",
			wantRequestHeaders: map[string]string{
				"Authorization": "Bearer s3cr3t",
				"Cache-Control": "no-cache",
				"Content-Type":  "application/json",
				"Pragma":        "no-cache",
			},
			wantBody: `{"a":1}`,
		},
	}
	for _, test := range dispatchTests {
		t.Run(test.name, func(t *testing.T) {
			var jsFuncs []js.Func
			gotOpenMethod := ""
			gotRequestHeaders := make(map[string]string)
			var gotBody interface{}
			dom := mockDOM{
				NewXHRFunc: func() js.Value {
					eventListeners := make(map[string]js.Value, 4)
					open := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
						gotOpenMethod = args[0].String()
						return nil
					})
					setRequestHeader := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
						gotRequestHeaders[args[0].String()] = args[1].String()
						return nil
					})
					addEventListener := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
						eventListeners[args[0].String()] = args[1]
						return nil
					})
					send := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
						if args[0].Type() == js.TypeString {
							gotBody = args[0].String()
						}
						event := js.ValueOf(map[string]interface{}{
							"type": test.eventType,
						})
						eventListeners[test.eventType].Invoke(event)
						return nil
					})
					jsFuncs = append(jsFuncs, open, setRequestHeader, addEventListener, send)
					return js.ValueOf(map[string]interface{}{
						"open":             open,
						"setRequestHeader": setRequestHeader,
						"addEventListener": addEventListener,
						"send":             send,
						"status":           200,
						"response":         test.responseBody,
					})
				},
				NewJsEventFuncFunc: func(fn func(event js.Value)) js.Func {
					f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
						fn(args[0])
						return nil
					})
					jsFuncs = append(jsFuncs, f)
					return f
				},
			}
			var cfg Config
			d, err := cfg.NewDispatcher(&dom, logtest.DiscardLogger)
			if err != nil {
				t.Fatalf("creating dispatcher: %v", err)
			}
			req := test.cfg.NewRequest()
			var got []byte
			switch {
			case test.extra != nil:
				got, err = d.DispatchWithHeader(context.Background(), *test.extra, req)
			default:
				got, err = d.Dispatch(context.Background(), req)
			}
			for _, f := range jsFuncs {
				f.Release()
			}
			if test.wantOpenMethod != gotOpenMethod {
				t.Errorf("xhr open methods not equal:\nwanted: %v\ngot:    %v", test.wantOpenMethod, gotOpenMethod)
			}
			var te *backend.TransportError
			switch {
			case test.wantErr != nil:
				if !errors.Is(err, test.wantErr) {
					t.Errorf("wanted %v, got %v", test.wantErr, err)
				}
			case test.wantTransportErr:
				if !errors.As(err, &te) {
					t.Errorf("wanted TransportError, got %v", err)
				}
			case err != nil:
				t.Errorf("unwanted error: %v", err)
			case test.want != string(got):
				t.Errorf("responses not equal:\nwanted %v\ngot    %v", test.want, string(got))
			default:
				if diff := cmp.Diff(test.wantRequestHeaders, gotRequestHeaders); diff != "" {
					t.Errorf("request headers: %v", diff)
				}
				if diff := cmp.Diff(test.wantBody, gotBody); diff != "" {
					t.Errorf("request body: %v", diff)
				}
			}
		})
	}
}
