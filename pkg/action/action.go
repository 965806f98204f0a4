// Package action describes mint actions to discovery clients.
//
// A client first fetches a Metadata descriptor with GET, renders the action's
// params as a form, then POSTs the filled params to the action path and
// receives an ExecutionResponse holding an unsigned transaction to sign.
package action

// Action types understood by action clients.
const (
	TypeDynamic    = "dynamic"
	TypeTransfer   = "transfer"
	TypeBlockchain = "blockchain"
	TypeHTTP       = "http"
)

// Param input types understood by action clients.
const (
	ParamText     = "text"
	ParamNumber   = "number"
	ParamEmail    = "email"
	ParamURL      = "url"
	ParamDatetime = "datetime"
	ParamTextarea = "textarea"
	ParamAddress  = "address"
	ParamBoolean  = "boolean"
	ParamSelect   = "select"
	ParamRadio    = "radio"
	ParamFile     = "file"
	ParamImage    = "image"
)

// Metadata is the descriptor returned by the GET side of an action endpoint.
type Metadata struct {
	URL         string   `json:"url" validate:"required,url"`
	Icon        string   `json:"icon" validate:"required,url"`
	Title       string   `json:"title" validate:"required,max=100"`
	BaseURL     string   `json:"baseUrl" validate:"required,url"`
	Description string   `json:"description" validate:"required,max=500"`
	Actions     []Action `json:"actions" validate:"required,min=1,max=4,dive"`
}

// Action is one user-facing operation of a descriptor.
type Action struct {
	Type        string  `json:"type" validate:"required,oneof=dynamic transfer blockchain http"`
	Label       string  `json:"label" validate:"required,max=30"`
	Description string  `json:"description,omitempty"`
	Chains      Chains  `json:"chains"`
	Path        string  `json:"path,omitempty" validate:"required_if=Type dynamic,omitempty,startswith=/"`
	Params      []Param `json:"params,omitempty" validate:"dive"`
}

// Chains names the chain the action's transaction targets.
type Chains struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination,omitempty"`
}

// Param is one input the client collects before submitting.
type Param struct {
	Name        string   `json:"name" validate:"required"`
	Label       string   `json:"label" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=text number email url datetime textarea address boolean select radio file image"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
	Value       any      `json:"value,omitempty"`
	Options     []Option `json:"options,omitempty" validate:"required_if=Type select,required_if=Type radio,dive"`
}

// Option is one choice of a select or radio param.
type Option struct {
	Label string `json:"label" validate:"required"`
	Value any    `json:"value"`
}

// ExecutionResponse is returned by the POST side of an action endpoint.
// ChainID carries the chain's display name, not its numeric id.
type ExecutionResponse struct {
	SerializedTransaction string `json:"serializedTransaction"`
	ChainID               string `json:"chainId"`
}
