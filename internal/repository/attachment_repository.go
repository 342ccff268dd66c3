package repository

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func insertTicketImages(ctx context.Context, q querier, ticketID string, urls []string) error {
	const query = `INSERT INTO ticket_images (ticket_id, position, url) VALUES ($1,$2,$3)`
	for i, url := range urls {
		if _, err := q.Exec(ctx, query, ticketID, i, url); err != nil {
			return err
		}
	}
	return nil
}

func loadTicketImages(ctx context.Context, q querier, ticketIDs []string) (map[string][]string, error) {
	const query = `
        SELECT ticket_id, url FROM ticket_images
        WHERE ticket_id = ANY($1) ORDER BY ticket_id, position`
	rows, err := q.Query(ctx, query, ticketIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]string)
	for rows.Next() {
		var ticketID, url string
		if err := rows.Scan(&ticketID, &url); err != nil {
			return nil, err
		}
		result[ticketID] = append(result[ticketID], url)
	}
	return result, rows.Err()
}

func insertMessageAttachments(ctx context.Context, q querier, messageID string, attachments []domain.Attachment) error {
	const query = `
        INSERT INTO message_attachments (message_id, position, type, url)
        VALUES ($1,$2,$3,$4)`
	for i, attachment := range attachments {
		if _, err := q.Exec(ctx, query, messageID, i, attachment.Type, attachment.URL); err != nil {
			return err
		}
	}
	return nil
}

func loadMessageAttachments(ctx context.Context, q querier, messageIDs []string) (map[string][]domain.Attachment, error) {
	const query = `
        SELECT message_id, type, url FROM message_attachments
        WHERE message_id = ANY($1) ORDER BY message_id, position`
	rows, err := q.Query(ctx, query, messageIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.Attachment)
	for rows.Next() {
		var messageID string
		var attachment domain.Attachment
		if err := rows.Scan(&messageID, &attachment.Type, &attachment.URL); err != nil {
			return nil, err
		}
		result[messageID] = append(result[messageID], attachment)
	}
	return result, rows.Err()
}
