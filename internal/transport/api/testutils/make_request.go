package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	body    io.Reader
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		body:    args.Body,
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, options.body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer добавляет заголовок Authorization с токеном. Пустой токен ничего не добавляет.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		if token != "" {
			fn.headers["Authorization"] = "Bearer " + token
		}
	}
}

// WithJSON сериализует v в тело запроса. Строки и []byte уходят как есть, чтобы можно было слать битый JSON.
func WithJSON(v any) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		switch body := v.(type) {
		case string:
			fn.body = bytes.NewBufferString(body)
		case []byte:
			fn.body = bytes.NewReader(body)
		default:
			b, err := json.Marshal(v)
			if err != nil {
				panic(fmt.Sprintf("testutils: marshal request body: %s", err.Error()))
			}
			fn.body = bytes.NewReader(b)
		}
		fn.headers["Content-Type"] = "application/json"
	}
}

// DecodeJSON читает и закрывает тело ответа.
func DecodeJSON(res *http.Response, v any) error {
	defer func() {
		_ = res.Body.Close()
	}()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
