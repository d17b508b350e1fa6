// Package http provides the HTTP transport used to query MusicBrainz.
//
// The Client adds a User-Agent header, a request timeout and a rate
// limit shared by every goroutine that uses it:
//
//	client := http.NewClient(http.DefaultConfig())
//	body, err := client.Get(ctx, url)
//	if http.IsStatus(err, 404) {
//	    // not found
//	}
//
// The public MusicBrainz server allows one request per second on average,
// which is the default limit.
package http
