package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descricao"`
	Priority    string   `json:"prioridade"`
	Department  string   `json:"departamento"`
	Images      []string `json:"imagens"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AttachmentPayload references an uploaded file.
type AttachmentPayload struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	Content     string              `json:"resposta"`
	Attachments []AttachmentPayload `json:"anexos"`
}

// MessageResponse represents one conversation entry.
type MessageResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	UserName    string              `json:"userName"`
	Content     string              `json:"content"`
	Timestamp   time.Time           `json:"timestamp"`
	Attachments []AttachmentPayload `json:"attachments,omitempty"`
}

// TicketResponse is the ticket as listed and fetched.
type TicketResponse struct {
	ID                  string                `json:"id"`
	Title               string                `json:"titulo"`
	Description         string                `json:"descricao"`
	Priority            domain.TicketPriority `json:"prioridade"`
	Status              domain.TicketStatus   `json:"status"`
	Department          domain.Department     `json:"departamento"`
	Images              []string              `json:"imagens"`
	CreatedAt           time.Time             `json:"criadoEm"`
	UpdatedAt           time.Time             `json:"atualizadoEm"`
	CreatedBy           string                `json:"criadoPor"`
	CreatedByName       string                `json:"criadoPorNome,omitempty"`
	CreatedByDepartment domain.Department     `json:"criadoPorDepartamento,omitempty"`
	AssignedTo          string                `json:"atribuidoPara,omitempty"`
	AssignedToName      string                `json:"atribuidoParaNome,omitempty"`
	Messages            []MessageResponse     `json:"mensagens"`
}

// NewTicketResponse maps a domain ticket to its wire form.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	images := ticket.AttachmentURLs
	if images == nil {
		images = []string{}
	}
	messages := make([]MessageResponse, 0, len(ticket.Messages))
	for i := range ticket.Messages {
		messages = append(messages, NewMessageResponse(&ticket.Messages[i]))
	}
	return TicketResponse{
		ID:                  ticket.ID,
		Title:               ticket.Title,
		Description:         ticket.Description,
		Priority:            ticket.Priority,
		Status:              ticket.Status,
		Department:          ticket.Department,
		Images:              images,
		CreatedAt:           ticket.CreatedAt,
		UpdatedAt:           ticket.UpdatedAt,
		CreatedBy:           ticket.CreatedBy,
		CreatedByName:       ticket.CreatedByName,
		CreatedByDepartment: ticket.CreatedByDepartment,
		AssignedTo:          ticket.AssignedTo,
		AssignedToName:      ticket.AssignedToName,
		Messages:            messages,
	}
}

// NewTicketList maps a slice, always returning a non-nil array.
func NewTicketList(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, NewTicketResponse(&tickets[i]))
	}
	return out
}

// NewMessageResponse maps a conversation entry.
func NewMessageResponse(msg *domain.Message) MessageResponse {
	resp := MessageResponse{
		ID:        msg.ID,
		UserID:    msg.UserID,
		UserName:  msg.UserName,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
	for _, att := range msg.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentPayload{Type: string(att.Type), URL: att.URL})
	}
	return resp
}
