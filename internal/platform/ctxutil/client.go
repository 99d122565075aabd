package ctxutil

import "context"

type clientDataKey struct{}

// ClientData describes who is calling. Crawler holds the matched user-agent signature.
type ClientData struct {
	UserAgent string
	Crawler   string
}

func WithClientData(ctx context.Context, cd *ClientData) context.Context {
	return context.WithValue(ctx, clientDataKey{}, cd)
}

func GetClientData(ctx context.Context) *ClientData {
	if cd, ok := ctx.Value(clientDataKey{}).(*ClientData); ok {
		return cd
	}
	return nil
}

func IsCrawler(ctx context.Context) bool {
	cd := GetClientData(ctx)
	return cd != nil && cd.Crawler != ""
}
