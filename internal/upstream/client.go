package upstream

import (
	"net/http"
	"strings"
)

const (
	defaultAPIBase = "https://api.github.com"
	defaultRawBase = "https://raw.githubusercontent.com"
	defaultRepo    = "embassy-rs/embassy"
	defaultBranch  = "main"
	userAgent      = "embassy-cli"
)

// Client queries the upstream framework repository.
type Client struct {
	httpClient *http.Client
	apiBase    string
	rawBase    string
	repo       string
	branch     string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing and for
// imposing a transport timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithAPIBase overrides the GitHub REST API base URL.
func WithAPIBase(base string) Option {
	return func(cl *Client) {
		cl.apiBase = strings.TrimRight(base, "/")
	}
}

// WithRawBase overrides the base URL raw files are fetched from.
func WithRawBase(base string) Option {
	return func(cl *Client) {
		cl.rawBase = strings.TrimRight(base, "/")
	}
}

// WithRepo sets the "owner/repo" to query.
func WithRepo(repo string) Option {
	return func(cl *Client) {
		cl.repo = strings.Trim(repo, "/")
	}
}

// WithBranch sets the branch raw files are read from.
func WithBranch(branch string) Option {
	return func(cl *Client) {
		cl.branch = branch
	}
}

// WithToken sends a GitHub token for higher rate limits. An empty token
// keeps requests unauthenticated.
func WithToken(token string) Option {
	return func(cl *Client) {
		cl.token = token
	}
}

// New creates a Client for embassy-rs/embassy on github.com, adjusted by opts.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		apiBase:    defaultAPIBase,
		rawBase:    defaultRawBase,
		repo:       defaultRepo,
		branch:     defaultBranch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repo returns the "owner/repo" this client queries.
func (c *Client) Repo() string {
	return c.repo
}

// GitURL returns the clone URL of the upstream repository, as used in
// generated [patch.crates-io] sections.
func (c *Client) GitURL() string {
	return "https://github.com/" + c.repo
}
