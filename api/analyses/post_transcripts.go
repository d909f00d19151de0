package analyses

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// AttachTranscripts adds transcripts to an analysis document. Attachment is
// what grants a transcript its respondent label; the analysis is renumbered
// afterwards and the updated labels are returned.
func AttachTranscripts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Analysis ID is required")
			return
		}

		var req types.AttachTranscriptsRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if len(req.TranscriptUUIDs) == 0 {
			types.SendBadRequest(c, "transcript_uuids must not be empty")
			return
		}

		log.Printf("[DEBUG] Attaching %d transcripts to analysis %s", len(req.TranscriptUUIDs), uuid)
		labels, err := deps.AnalysisService.AttachTranscripts(c.Request.Context(), uuid, req.TranscriptUUIDs)
		if err != nil {
			log.Printf("[WARN] Attach failed for analysis %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}

// DetachTranscript removes one transcript from an analysis document and
// renumbers the remaining members.
func DetachTranscript(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		transcriptUUID := c.Param("transcriptId")
		if uuid == "" || transcriptUUID == "" {
			types.SendBadRequest(c, "Analysis ID and transcript ID are required")
			return
		}

		labels, err := deps.AnalysisService.DetachTranscript(c.Request.Context(), uuid, transcriptUUID)
		if err != nil {
			log.Printf("[WARN] Detach failed for analysis %s transcript %s: %v", uuid, transcriptUUID, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}
