package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	toml "github.com/pelletier/go-toml"
)

const toolchainFile = "rust-toolchain.toml"

type commit struct {
	SHA string `json:"sha"`
}

// LatestCommit returns the SHA of the newest commit on the default branch.
func (c *Client) LatestCommit(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/commits?per_page=1", c.apiBase, c.repo)
	body, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return "", fmt.Errorf("fetching latest commit: %w", err)
	}

	var commits []commit
	if err := json.Unmarshal(body, &commits); err != nil {
		return "", fmt.Errorf("parsing commit list: %w: %w", ErrParse, err)
	}
	if len(commits) == 0 {
		return "", fmt.Errorf("no commits in %s: %w", c.repo, ErrNotFound)
	}

	sha := strings.TrimSpace(commits[0].SHA)
	if sha == "" {
		return "", fmt.Errorf("commit without sha in %s: %w", c.repo, ErrParse)
	}
	return sha, nil
}

// ToolchainChannel returns toolchain.channel from the upstream
// rust-toolchain.toml.
func (c *Client) ToolchainChannel(ctx context.Context) (string, error) {
	doc, err := c.rawTOML(ctx, toolchainFile)
	if err != nil {
		return "", err
	}

	channel, ok := doc.Get("toolchain.channel").(string)
	if !ok || channel == "" {
		return "", fmt.Errorf("%s has no toolchain.channel: %w", toolchainFile, ErrMissingField)
	}
	return channel, nil
}

// ComponentVersion returns package.version from the named crate's Cargo.toml.
func (c *Client) ComponentVersion(ctx context.Context, name string) (string, error) {
	path, err := ComponentPath(name)
	if err != nil {
		return "", err
	}

	doc, err := c.rawTOML(ctx, path)
	if err != nil {
		return "", err
	}

	raw, ok := doc.Get("package.version").(string)
	if !ok || raw == "" {
		return "", fmt.Errorf("%s has no package.version: %w", path, ErrMissingField)
	}

	version, err := normalizeVersion(raw)
	if err != nil {
		return "", fmt.Errorf("version of %s: %w: %w", name, ErrParse, err)
	}
	return version, nil
}

// rawTOML fetches a file from the upstream branch and parses it as TOML.
func (c *Client) rawTOML(ctx context.Context, path string) (*toml.Tree, error) {
	url := fmt.Sprintf("%s/%s/%s/%s", c.rawBase, c.repo, c.branch, path)
	body, err := c.get(ctx, url, "text/plain")
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	doc, err := toml.LoadBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %w", path, ErrParse, err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w: %w", ErrNetwork, err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	slog.Debug("upstream request", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	slog.Debug("upstream response", "url", url, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("GitHub rate limit exceeded, set GITHUB_TOKEN for higher limits: %w", ErrNetwork)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s returned status %d: %w", url, resp.StatusCode, ErrNetwork)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w: %w", ErrNetwork, err)
	}
	return body, nil
}
