package domain

import (
	"fmt"
	"strings"
)

// InstanceWadoURI builds the WADO-URI retrieval URL for an instance.
func InstanceWadoURI(server Server, studyUID, seriesUID, sopUID string) string {
	params := []string{
		"requestType=WADO",
		"studyUID=" + studyUID,
		"seriesUID=" + seriesUID,
		"objectUID=" + sopUID,
		"contentType=application/dicom",
		"transferSyntax=*",
	}

	return server.WadoUriRoot + "?" + strings.Join(params, "&")
}

// InstanceWadoRsURI builds the WADO-RS instance URL for an instance.
func InstanceWadoRsURI(server Server, studyUID, seriesUID, sopUID string) string {
	return fmt.Sprintf("%s/studies/%s/series/%s/instances/%s", server.WadoRoot, studyUID, seriesUID, sopUID)
}

// InstanceFrameWadoRsURI builds the WADO-RS frame URL for an instance.
// Frames are one-based; non-positive frame numbers resolve to the first.
func InstanceFrameWadoRsURI(server Server, studyUID, seriesUID, sopUID string, frame int) string {
	if frame < 1 {
		frame = 1
	}
	return fmt.Sprintf("%s/frames/%d", InstanceWadoRsURI(server, studyUID, seriesUID, sopUID), frame)
}
