package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return payload, nil
}

// reply - sends either the result or the error; only a failed write ends the connection.
func (that *Server) reply(conn *connection, action string, payload ResponsePayload, err error) error {
	if err != nil {
		if !isClientError(err) {
			that.logger.Error("failed to process message", "action", action, "error", err)
		}

		return conn.sendError(action, err)
	}

	return conn.send(action, payload)
}

// sessionID - the session named in the payload, or the one bound to the connection.
func sessionID(conn *connection, payload Payload) (string, error) {
	if payload.SessionID != "" {
		return payload.SessionID, nil
	}

	if conn.sessionID == "" {
		return "", errNoSession
	}

	return conn.sessionID, nil
}

func (that *Server) handleSessionStart(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	session, err := that.uGame.StartSession(ctx, payload.PlayerX, payload.PlayerO)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	conn.sessionID = session.ID

	return that.reply(conn, msg.Action, ResponsePayload{Game: newGameView(session)}, nil)
}

// handleGameState - also binds the connection to an existing session, e.g. after a reload.
func (that *Server) handleGameState(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	id, err := sessionID(conn, payload)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	session, err := that.uGame.GetSession(ctx, id)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	conn.sessionID = session.ID

	return that.reply(conn, msg.Action, ResponsePayload{Game: newGameView(session)}, nil)
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	if payload.Row == nil || payload.Column == nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, fmt.Errorf("%w: row and column are required", errBadRequest))
	}

	id, err := sessionID(conn, payload)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	session, outcome, err := that.uGame.PlaceMark(ctx, id, *payload.Row, *payload.Column)
	if err != nil {
		if !isClientError(err) {
			that.logger.Error("failed to place mark", "sessionID", id, "error", err)
		}

		resp := errorPayload(err)
		if session != nil {
			resp.Game = newGameView(session)
		}

		return conn.send(msg.Action, resp)
	}

	return that.reply(conn, msg.Action, ResponsePayload{Game: newGameView(session), Outcome: &outcome}, nil)
}

func (that *Server) handleGameRound(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	id, err := sessionID(conn, payload)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	session, err := that.uGame.StartNewRound(ctx, id)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	return that.reply(conn, msg.Action, ResponsePayload{Game: newGameView(session)}, nil)
}

func (that *Server) handleGameFinish(ctx context.Context, conn *connection, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	id, err := sessionID(conn, payload)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	summary, err := that.uGame.FinishSession(ctx, id)
	if err != nil {
		return that.reply(conn, msg.Action, ResponsePayload{}, err)
	}

	conn.sessionID = ""

	return that.reply(conn, msg.Action, ResponsePayload{Summary: &summary}, nil)
}
