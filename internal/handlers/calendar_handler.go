package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifecarelabs/lab-portal/internal/domain/schedule"
	"github.com/lifecarelabs/lab-portal/internal/httperr"
	"github.com/lifecarelabs/lab-portal/internal/httpresp"
	"github.com/lifecarelabs/lab-portal/internal/middleware"
	uccalendar "github.com/lifecarelabs/lab-portal/internal/usecase/calendar"
)

type CalendarHandler struct {
	block   *uccalendar.BlockCapacity
	unblock *uccalendar.UnblockCapacity
	list    *uccalendar.ListBlocks
}

func NewCalendarHandler(
	block *uccalendar.BlockCapacity,
	unblock *uccalendar.UnblockCapacity,
	list *uccalendar.ListBlocks,
) *CalendarHandler {
	return &CalendarHandler{
		block:   block,
		unblock: unblock,
		list:    list,
	}
}

func (h *CalendarHandler) SlotGrid(c *gin.Context) {
	httpresp.OK(c, gin.H{"slots": schedule.Grid()})
}

type BlockRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot"`
	Reason   string `json:"reason"`
}

func (h *CalendarHandler) Block(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Data obrigatória.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	block, err := h.block.Execute(c.Request.Context(), actorID, uccalendar.BlockCapacityInput{
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Reason:   req.Reason,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "failed_to_block", "Erro ao bloquear agenda.")
		return
	}

	httpresp.Created(c, block)
}

func (h *CalendarHandler) Unblock(c *gin.Context) {
	blockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)

	if err := h.unblock.Execute(c.Request.Context(), actorID, uint(blockID)); err != nil {
		httperr.FromBusiness(c, err, "failed_to_unblock", "Erro ao desbloquear agenda.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Bloqueio removido."})
}

func (h *CalendarHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Erro ao listar bloqueios.")
		return
	}
	httpresp.List(c, blocks)
}
