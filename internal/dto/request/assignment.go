package request

type AssignAgentRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid"`
}
