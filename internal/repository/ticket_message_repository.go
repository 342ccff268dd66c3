package repository

import (
	"context"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func insertMessage(ctx context.Context, q querier, ticketID string, msg *domain.Message) error {
	assignMessageID(msg)
	const query = `
        INSERT INTO ticket_messages (id, ticket_id, user_id, user_name, content, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)`
	if _, err := q.Exec(ctx, query,
		msg.ID,
		ticketID,
		msg.UserID,
		msg.UserName,
		msg.Content,
		msg.Timestamp,
	); err != nil {
		return err
	}
	return insertMessageAttachments(ctx, q, msg.ID, msg.Attachments)
}

// loadMessages returns conversations keyed by ticket id, oldest first.
func loadMessages(ctx context.Context, q querier, ticketIDs []string) (map[string][]domain.Message, error) {
	const query = `
        SELECT id, ticket_id, user_id, user_name, content, created_at
        FROM ticket_messages WHERE ticket_id = ANY($1) ORDER BY seq ASC`
	rows, err := q.Query(ctx, query, ticketIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type keyed struct {
		ticketID string
		msg      domain.Message
	}
	var ordered []keyed
	var messageIDs []string
	for rows.Next() {
		var k keyed
		if err := rows.Scan(
			&k.msg.ID,
			&k.ticketID,
			&k.msg.UserID,
			&k.msg.UserName,
			&k.msg.Content,
			&k.msg.Timestamp,
		); err != nil {
			return nil, err
		}
		ordered = append(ordered, k)
		messageIDs = append(messageIDs, k.msg.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	result := make(map[string][]domain.Message, len(ticketIDs))
	if len(ordered) == 0 {
		return result, nil
	}
	attachments, err := loadMessageAttachments(ctx, q, messageIDs)
	if err != nil {
		return nil, err
	}
	for _, k := range ordered {
		k.msg.Attachments = attachments[k.msg.ID]
		result[k.ticketID] = append(result[k.ticketID], k.msg)
	}
	return result, nil
}
