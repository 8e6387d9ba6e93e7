package domain

// Server describes one DICOMweb origin: the three protocol roots, the
// authorization material, rendering hints propagated onto instances, and
// whether study retrieval may load series lazily.
type Server struct {
	Name               string
	WadoUriRoot        string
	WadoRoot           string
	QidoRoot           string
	AuthToken          string
	ImageRendering     string
	ThumbnailRendering string
	EnableLazyLoad     bool
}

// AuthorizationHeader returns the Authorization header value for requests to
// this server, or the empty string when the server is unauthenticated.
func (s Server) AuthorizationHeader() string {
	if s.AuthToken == "" {
		return ""
	}
	return "Bearer " + s.AuthToken
}
