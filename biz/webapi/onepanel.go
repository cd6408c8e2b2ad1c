package webapi

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"panelbot/biz/domain"
	"panelbot/config"
)

// OnePanelAPI talks to the 1Panel v2 REST API. Every request carries the
// signed-timestamp headers the panel expects:
//
//	1Panel-Token     = md5("1panel" + apiKey + unixTimestamp)
//	1Panel-Timestamp = unixTimestamp
//
// The timestamp must stay inside the panel's clock-skew window; a rejected
// signature comes back as a coded error and is shown to the user as-is.
type OnePanelAPI struct {
	host          string
	apiKey        string
	client        *http.Client
	operateClient *http.Client
	now           func() time.Time
}

func CreateOnePanelAPI(cfg *config.Config) *OnePanelAPI {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Panel.InsecureSkipVerify {
		// self-hosted panels usually run on self-signed certs
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &OnePanelAPI{
		host:          strings.TrimRight(cfg.Panel.Host, "/"),
		apiKey:        cfg.Panel.APIKey,
		client:        &http.Client{Timeout: cfg.Panel.RequestTimeout, Transport: transport},
		operateClient: &http.Client{Timeout: cfg.Panel.OperateTimeout, Transport: transport},
		now:           time.Now,
	}
}

func signToken(apiKey string, timestamp int64) string {
	sum := md5.Sum([]byte("1panel" + apiKey + strconv.FormatInt(timestamp, 10)))
	return hex.EncodeToString(sum[:])
}

func (p *OnePanelAPI) signHeaders(req *http.Request) {
	ts := p.now().Unix()
	req.Header.Set("1Panel-Token", signToken(p.apiKey, ts))
	req.Header.Set("1Panel-Timestamp", strconv.FormatInt(ts, 10))
	req.Header.Set("Content-Type", "application/json")
}

// envelope is the panel's uniform response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (p *OnePanelAPI) call(ctx context.Context, client *http.Client, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			zap.L().Error("Marshal JSON", zap.Error(err), zap.String("path", path))
			return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.host+path, reader)
	if err != nil {
		zap.L().Error("NewRequest ", zap.Error(err), zap.String("path", path))
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	p.signHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		zap.L().Error("client.Do(req) ", zap.Error(err), zap.String("path", path))
		return nil, domain.WrapErrorf(err, domain.ErrUpstream, domain.MessagePanelUnreachable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.L().Error("ReadAll ", zap.Error(err), zap.String("path", path))
		return nil, domain.WrapErrorf(err, domain.ErrUpstream, domain.MessagePanelUnreachable)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		zap.L().Error("Unmarshal envelope", zap.Error(err), zap.String("path", path))
		return nil, domain.WrapErrorf(err, domain.ErrUpstream, "unexpected reply from %s", path)
	}
	if env.Code != http.StatusOK {
		zap.L().Error("1panel api error", zap.Int("code", env.Code),
			zap.String("message", env.Message), zap.String("path", path))
		if env.Code == http.StatusUnauthorized || env.Code == http.StatusRequestTimeout {
			return nil, domain.NewErrorf(domain.ErrUnauthorized, "authentication rejected: %s", env.Message)
		}
		return nil, domain.NewErrorf(domain.ErrUpstream, "%s", env.Message)
	}

	return env.Data, nil
}

func (p *OnePanelAPI) get(ctx context.Context, path string, out interface{}) error {
	data, err := p.call(ctx, p.client, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(data, path, out)
}

func (p *OnePanelAPI) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := p.call(ctx, p.client, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(data, path, out)
}

func decode(data json.RawMessage, path string, out interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		zap.L().Error("Unmarshal data", zap.Error(err), zap.String("path", path))
		return domain.WrapErrorf(err, domain.ErrUpstream, "unexpected reply from %s", path)
	}
	return nil
}
