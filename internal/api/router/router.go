package router

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"cv-agent-go/internal/api/handler"
)

// RegisterRoutes 注册API路由
func RegisterRoutes(h *server.Hertz, documentHandler *handler.DocumentHandler) {
	api := h.Group("/api/v1")

	api.POST("/documents/upload", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		userUUID := ctx.PostForm("user_uuid")

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		mimeType := fileHeader.Header.Get("Content-Type")

		resp, err := documentHandler.HandleDocumentUpload(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			mimeType,
			userUUID,
		)
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/documents/:uuid/process", func(c context.Context, ctx *app.RequestContext) {
		documentUUID := ctx.Param("uuid")
		if documentUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少文档UUID"})
			return
		}

		resp, err := documentHandler.HandleProcessDocument(c, documentUUID)
		if err != nil {
			ctx.JSON(consts.StatusUnprocessableEntity, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/documents/:uuid/profile", func(c context.Context, ctx *app.RequestContext) {
		documentUUID := ctx.Param("uuid")
		profile, err := documentHandler.HandleGetProfile(c, documentUUID)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		if profile == nil {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "档案不存在"})
			return
		}

		ctx.JSON(consts.StatusOK, profile)
	})

	api.GET("/documents/:uuid/text", func(c context.Context, ctx *app.RequestContext) {
		documentUUID := ctx.Param("uuid")
		text, err := documentHandler.HandleGetExtractedText(c, documentUUID)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		if text == "" {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "提取文本不存在"})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{"document_uuid": documentUUID, "text": text})
	})

	api.GET("/documents/:uuid/download", func(c context.Context, ctx *app.RequestContext) {
		documentUUID := ctx.Param("uuid")
		url, err := documentHandler.HandleGetDownloadURL(c, documentUUID)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		if url == "" {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "文档不存在"})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{"document_uuid": documentUUID, "download_url": url})
	})

	api.DELETE("/documents/:uuid", func(c context.Context, ctx *app.RequestContext) {
		documentUUID := ctx.Param("uuid")
		if err := documentHandler.HandleDeleteDocument(c, documentUUID); err != nil {
			ctx.JSON(consts.StatusUnprocessableEntity, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{"document_uuid": documentUUID, "status": "DELETED"})
	})

	api.GET("/documents/pending", func(c context.Context, ctx *app.RequestContext) {
		limit, _ := strconv.Atoi(ctx.Query("limit"))
		docs, err := documentHandler.HandleListPending(c, limit)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, utils.H{"documents": docs, "count": len(docs)})
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
