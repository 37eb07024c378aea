package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opalarchive/parser/bbcode"
)

type parseTextRequest struct {
	Text             string `json:"text" binding:"required"`
	PreserveNewlines bool   `json:"preserve_newlines"`
}

type parseTextResponse struct {
	Tree   []bbcode.SerializableToken `json:"tree"`
	Source string                     `json:"source"`
}

// parseText converts the posted markup into its token forest. Parsing itself
// never fails: malformed markup degrades to content inside the tree, so the
// only client errors here are a bad request body or an oversized input.
func (service *Service) parseText(ctx *gin.Context) {
	var req parseTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	if maxBytes := service.config.MaxInputBytes; maxBytes > 0 && len(req.Text) > maxBytes {
		err := fmt.Errorf("text exceeds the %d byte limit", maxBytes)
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(err))
		return
	}

	var forest []*bbcode.Token
	if req.PreserveNewlines {
		forest = service.parser.ParsePreservingNewlines(req.Text)
	} else {
		forest = service.parser.Parse(req.Text)
	}

	ctx.JSON(http.StatusOK, parseTextResponse{
		Tree:   bbcode.Serialize(forest),
		Source: bbcode.Source(forest),
	})
}
