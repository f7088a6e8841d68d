package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nbox/ProductHunt-Statistic/internal/config"
	"github.com/nbox/ProductHunt-Statistic/internal/constants"
	"github.com/nbox/ProductHunt-Statistic/internal/domain"

	"github.com/valyala/fasthttp"
)

const postsQuery = `
query Posts($first: Int, $after: String, $postedAfter: DateTime, $postedBefore: DateTime) {
  posts(first: $first, after: $after, postedAfter: $postedAfter, postedBefore: $postedBefore) {
    pageInfo { hasNextPage endCursor }
    edges {
      node {
        name
        tagline
        description
        url
        website
        votesCount
        commentsCount
        makers { name username url }
      }
    }
  }
}
`

type PHClient struct {
	token    string
	endpoint string
	client   *fasthttp.Client
}

func NewPHClient(cfg *config.Config) *PHClient {
	return &PHClient{
		token:    cfg.Token,
		endpoint: constants.PHEndpoint,
		client: &fasthttp.Client{
			MaxConnsPerHost:     4,
			ReadTimeout:         constants.FetchTimeout,
			WriteTimeout:        constants.FetchTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// NewPHClientWithEndpoint builds a client against a custom endpoint, for tests.
func NewPHClientWithEndpoint(cfg *config.Config, endpoint string) *PHClient {
	c := NewPHClient(cfg)
	c.endpoint = endpoint
	return c
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   postsData       `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type postsData struct {
	Posts postsConnection `json:"posts"`
}

type postsConnection struct {
	PageInfo pageInfo `json:"pageInfo"`
	Edges    []edge   `json:"edges"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type edge struct {
	Node *postNode `json:"node"`
}

type postNode struct {
	Name          string      `json:"name"`
	Tagline       string      `json:"tagline"`
	Description   string      `json:"description"`
	URL           string      `json:"url"`
	Website       string      `json:"website"`
	VotesCount    int         `json:"votesCount"`
	CommentsCount int         `json:"commentsCount"`
	Makers        []makerNode `json:"makers"`
}

type makerNode struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// FetchPostsForDay pulls every launch posted inside the window, walking the
// cursor until the server reports no next page. A page that claims more
// results but returns no cursor ends the loop anyway, so a malformed
// response cannot spin forever.
func (c *PHClient) FetchPostsForDay(ctx context.Context, win domain.TimeWindow) ([]domain.Post, error) {
	var posts []domain.Post
	after := ""

	for {
		variables := map[string]any{
			"first":        constants.PageSize,
			"after":        nil,
			"postedAfter":  win.PostedAfter(),
			"postedBefore": win.PostedBefore(),
		}
		if after != "" {
			variables["after"] = after
		}

		conn, err := c.queryPage(ctx, variables)
		if err != nil {
			return nil, err
		}

		for _, e := range conn.Edges {
			if e.Node == nil {
				continue
			}
			posts = append(posts, toDomain(e.Node))
		}

		if !conn.PageInfo.HasNextPage {
			break
		}
		after = conn.PageInfo.EndCursor
		if after == "" {
			break
		}
	}

	return posts, nil
}

func (c *PHClient) queryPage(ctx context.Context, variables map[string]any) (*postsConnection, error) {
	payload, err := json.Marshal(graphqlRequest{Query: postsQuery, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.SetBody(payload)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.FetchTimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("graphql request failed: %w", err)
	}

	// fasthttp recycles the response buffer on release, so anything kept
	// past this function (error payloads, RawMessage) needs its own copy.
	body := append([]byte(nil), resp.Body()...)

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &domain.FetchError{Status: status, Payload: body}
	}

	var out graphqlResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode graphql response: %w", err)
	}

	if len(out.Errors) > 0 && string(out.Errors) != "null" && string(out.Errors) != "[]" {
		return nil, &domain.FetchError{Status: status, Payload: []byte(out.Errors)}
	}

	return &out.Data.Posts, nil
}

func toDomain(n *postNode) domain.Post {
	p := domain.Post{
		Name:          n.Name,
		Tagline:       n.Tagline,
		Description:   n.Description,
		URL:           n.URL,
		Website:       n.Website,
		VotesCount:    n.VotesCount,
		CommentsCount: n.CommentsCount,
	}
	for _, m := range n.Makers {
		p.Makers = append(p.Makers, domain.Maker{Name: m.Name, Username: m.Username, URL: m.URL})
	}
	return p
}
