package gryphon

import "fmt"

// Source and destination identifiers.
const (
	SDCard   = 0x01
	SDServer = 0x02
	SDClient = 0x03
	SDKnown  = 0x10
	SDSched  = 0x20
	SDScript = 0x21
	SDPgm    = 0x22
	SDUSDT   = 0x23
	SDBLM    = 0x24
	SDFlight = 0x25
	SDResp   = 0x26
	SDIOPwr  = 0x27
	SDUtil   = 0x28
)

var sdNames = map[uint64]string{
	SDCard:   "Card",
	SDServer: "Server",
	SDClient: "Client",
	SDKnown:  "Known",
	SDSched:  "Scheduler",
	SDScript: "Script Processor",
	SDPgm:    "Program Loader",
	SDUSDT:   "USDT Server",
	SDBLM:    "Bus Load Monitoring",
	SDFlight: "Flight Recorder",
	SDResp:   "Message Responder",
	SDIOPwr:  "I/O and power",
	SDUtil:   "Utility/Miscellaneous",
}

// SDName names a source or destination identifier.
func SDName(sd uint8) string {
	if name, ok := sdNames[uint64(sd)]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%#02x)", sd)
}

// Generic commands understood by every destination.
const (
	cmdInit         = 0x01
	cmdGetStat      = 0x02
	cmdGetConfig    = 0x03
	cmdEventEnable  = 0x04
	cmdEventDisable = 0x05
	cmdGetTime      = 0x06
	cmdSetTime      = 0x07
	cmdGetRxDrop    = 0x08
	cmdResetRxDrop  = 0x09
	cmdBcastOn      = 0x0a
	cmdBcastOff     = 0x0b
)

// qualified builds the table key of a destination specific command.
func qualified(sd, id int) int { return sd<<8 | id }

// Destination specific commands.
var (
	cmdCardSetSpeed         = qualified(SDCard, 0x40)
	cmdCardGetSpeed         = qualified(SDCard, 0x41)
	cmdCardSetFilter        = qualified(SDCard, 0x42)
	cmdCardGetFilter        = qualified(SDCard, 0x43)
	cmdCardTx               = qualified(SDCard, 0x44)
	cmdCardTxLoopOn         = qualified(SDCard, 0x45)
	cmdCardTxLoopOff        = qualified(SDCard, 0x46)
	cmdCardIOCTL            = qualified(SDCard, 0x47)
	cmdCardAddFilter        = qualified(SDCard, 0x48)
	cmdCardModifyFilter     = qualified(SDCard, 0x49)
	cmdCardGetFilterHandles = qualified(SDCard, 0x4a)
	cmdCardSetDefaultFilter = qualified(SDCard, 0x4b)
	cmdCardGetDefaultFilter = qualified(SDCard, 0x4c)
	cmdCardSetFilterMode    = qualified(SDCard, 0x4d)
	cmdCardGetFilterMode    = qualified(SDCard, 0x4e)
	cmdCardGetEvNames       = qualified(SDCard, 0x4f)
	cmdCardGetSpeeds        = qualified(SDCard, 0x50)

	cmdServerReg     = qualified(SDServer, 0x50)
	cmdServerSetSort = qualified(SDServer, 0x51)
	cmdServerSetOpt  = qualified(SDServer, 0x52)

	cmdClientGetID    = qualified(SDClient, 0x60)
	cmdClientSetID    = qualified(SDClient, 0x61)
	cmdClientShutdown = qualified(SDClient, 0x62)

	cmdSchedTx         = qualified(SDSched, 0x70)
	cmdSchedKillTx     = qualified(SDSched, 0x71)
	cmdSchedMsgReplace = qualified(SDSched, 0x72)

	cmdPgmDesc    = qualified(SDPgm, 0x90)
	cmdPgmUpload  = qualified(SDPgm, 0x91)
	cmdPgmDelete  = qualified(SDPgm, 0x92)
	cmdPgmList    = qualified(SDPgm, 0x93)
	cmdPgmStart   = qualified(SDPgm, 0x94)
	cmdPgmStop    = qualified(SDPgm, 0x95)
	cmdPgmStatus  = qualified(SDPgm, 0x96)
	cmdPgmOptions = qualified(SDPgm, 0x97)
	cmdPgmFiles   = qualified(SDPgm, 0x98)

	cmdUSDTIOCTL    = qualified(SDUSDT, 0x47)
	cmdUSDTRegister = qualified(SDUSDT, 0xb0)

	cmdBLMSetMode  = qualified(SDBLM, 0xa0)
	cmdBLMGetMode  = qualified(SDBLM, 0xa1)
	cmdBLMGetData  = qualified(SDBLM, 0xa2)
	cmdBLMGetStats = qualified(SDBLM, 0xa3)

	cmdFlightGetConfig = qualified(SDFlight, 0x50)
	cmdFlightStartMon  = qualified(SDFlight, 0x51)
	cmdFlightStopMon   = qualified(SDFlight, 0x52)

	cmdMsgRespAdd        = qualified(SDResp, 0xb0)
	cmdMsgRespGet        = qualified(SDResp, 0xb1)
	cmdMsgRespModify     = qualified(SDResp, 0xb2)
	cmdMsgRespGetHandles = qualified(SDResp, 0xb3)

	cmdIOPwrGetInp   = qualified(SDIOPwr, 0x40)
	cmdIOPwrGetLatch = qualified(SDIOPwr, 0x41)
	cmdIOPwrClrLatch = qualified(SDIOPwr, 0x42)
	cmdIOPwrGetOut   = qualified(SDIOPwr, 0x43)
	cmdIOPwrSetOut   = qualified(SDIOPwr, 0x44)
	cmdIOPwrSetBit   = qualified(SDIOPwr, 0x45)
	cmdIOPwrClrBit   = qualified(SDIOPwr, 0x46)
	cmdIOPwrGetPower = qualified(SDIOPwr, 0x47)

	cmdUtilSetInitStrategy = qualified(SDUtil, 0x90)
	cmdUtilGetInitStrategy = qualified(SDUtil, 0x91)
)

// bodyFunc decodes the command specific part of a request or response.
type bodyFunc func(f *fields)

// command pairs the request and response decoders of one command.
type command struct {
	name string
	req  bodyFunc
	resp bodyFunc
}

var commands map[int]command

func init() {
	commands = map[int]command{
		cmdInit:         {"Initialize", cmdInitBody, nil},
		cmdGetStat:      {"Get status", nil, nil},
		cmdGetConfig:    {"Get configuration", nil, respConfig},
		cmdEventEnable:  {"Enable event", eventID, nil},
		cmdEventDisable: {"Disable event", eventID, nil},
		cmdGetTime:      {"Get time", nil, timeValue},
		cmdSetTime:      {"Set time", timeValue, nil},
		cmdGetRxDrop:    {"Get number of dropped RX messages", nil, rxDrop},
		cmdResetRxDrop:  {"Clear number of dropped RX messages", nil, nil},
		cmdBcastOn:      {"Set broadcasts on", nil, nil},
		cmdBcastOff:     {"Set broadcasts off", nil, nil},

		cmdCardSetSpeed:         {"Set speed", speed, nil},
		cmdCardGetSpeed:         {"Get speed", nil, speed},
		cmdCardSetFilter:        {"Set filter (deprecated)", addFilter, nil},
		cmdCardGetFilter:        {"Get filter", filterHandle, addFilter},
		cmdCardTx:               {"Transmit message", dataBody, nil},
		cmdCardTxLoopOn:         {"Set transmit loopback on", nil, nil},
		cmdCardTxLoopOff:        {"Set transmit loopback off", nil, nil},
		cmdCardIOCTL:            {"IOCTL pass-through", ioctl, ioctl},
		cmdCardAddFilter:        {"Add a filter", addFilter, filterHandle},
		cmdCardModifyFilter:     {"Modify a filter", modifyFilter, nil},
		cmdCardGetFilterHandles: {"Get filter handles", nil, handles},
		cmdCardSetDefaultFilter: {"Set default filter", defaultFilter, nil},
		cmdCardGetDefaultFilter: {"Get default filter mode", nil, defaultFilter},
		cmdCardSetFilterMode:    {"Set filter mode", filterMode, nil},
		cmdCardGetFilterMode:    {"Get filter mode", nil, filterMode},
		cmdCardGetEvNames:       {"Get event names", nil, eventNames},
		cmdCardGetSpeeds:        {"Get defined speeds", nil, speeds},

		cmdServerReg:     {"Register with server", register, registered},
		cmdServerSetSort: {"Set the sorting behavior", sortMode, nil},
		cmdServerSetOpt:  {"Set the type of optimization", optimization, nil},

		cmdClientGetID:    {"Get the ID assigned to this client", nil, clientID},
		cmdClientSetID:    {"Set the ID assigned to this client", clientID, nil},
		cmdClientShutdown: {"Tell the client to shut down", nil, nil},

		cmdSchedTx:         {"Schedule transmission of messages", schedule, scheduleID},
		cmdSchedKillTx:     {"Stop and destroy a message transmission", scheduleID, nil},
		cmdSchedMsgReplace: {"Replace a scheduled message", scheduleReplace, nil},

		cmdPgmDesc:    {"Describe program to be uploaded", pgmDesc, pgmDescResp},
		cmdPgmUpload:  {"Upload a program to the Gryphon", pgmUpload, nil},
		cmdPgmDelete:  {"Delete an uploaded program", pgmName, nil},
		cmdPgmList:    {"Get a list of uploaded programs", pgmListReq, pgmList},
		cmdPgmStart:   {"Start an uploaded program", pgmStart, pgmPID},
		cmdPgmStop:    {"Stop a running program", pgmPID, nil},
		cmdPgmStatus:  {"Get status of a program", pgmPID, pgmStatus},
		cmdPgmOptions: {"Set program upload options", pgmOptions, nil},
		cmdPgmFiles:   {"Get a list of files & directories", pgmFilesReq, pgmFiles},

		cmdUSDTIOCTL:    {"Pass an IOCTL to the USDT", ioctl, ioctl},
		cmdUSDTRegister: {"Register/Unregister with USDT server", usdtRegister, nil},

		cmdBLMSetMode:  {"Set Bus Load Monitoring mode", blmMode, nil},
		cmdBLMGetMode:  {"Get Bus Load Monitoring mode", nil, blmMode},
		cmdBLMGetData:  {"Get Bus Load data", nil, blmData},
		cmdBLMGetStats: {"Get Bus Load statistics", nil, blmStats},

		cmdFlightGetConfig: {"Get flight recorder channel info", nil, nil},
		cmdFlightStartMon:  {"Start flight recorder monitoring", nil, nil},
		cmdFlightStopMon:   {"Stop flight recorder monitoring", nil, nil},

		cmdMsgRespAdd:        {"Add response message", msgRespAdd, filterHandle},
		cmdMsgRespGet:        {"Get response message", filterHandle, msgRespAdd},
		cmdMsgRespModify:     {"Modify response message state", modifyFilter, nil},
		cmdMsgRespGetHandles: {"Get response message handles", nil, handles},

		cmdIOPwrGetInp:   {"Read current digital inputs", nil, ioBits},
		cmdIOPwrGetLatch: {"Read latched digital inputs", nil, ioBits},
		cmdIOPwrClrLatch: {"Read & clear latched digital inputs", ioBits, ioBits},
		cmdIOPwrGetOut:   {"Read digital outputs", nil, ioBits},
		cmdIOPwrSetOut:   {"Write digital outputs", ioBits, nil},
		cmdIOPwrSetBit:   {"Set indicated output bit(s)", ioBits, nil},
		cmdIOPwrClrBit:   {"Clear indicated output bit(s)", ioBits, nil},
		cmdIOPwrGetPower: {"Read digital inputs at power on time", nil, ioBits},

		cmdUtilSetInitStrategy: {"Set initialization strategy", initStrategy, nil},
		cmdUtilGetInitStrategy: {"Get initialization strategy", nil, initStrategy},
	}
}

// lookupCommand resolves a command octet. Command IDs above 0x3f are
// specific to the destination of a request or the source of a response,
// passed as sd. A destination specific command no table entry matches is
// retried as a card command when sd is at or above SDKnown.
func lookupCommand(id, sd uint8) (int, command, bool) {
	key := int(id)
	if id > 0x3f {
		key = qualified(int(sd), int(id))
	}
	if c, ok := commands[key]; ok {
		return key, c, true
	}
	if id > 0x3f && sd >= SDKnown {
		key = qualified(SDCard, int(id))
		if c, ok := commands[key]; ok {
			return key, c, true
		}
	}
	return key, command{}, false
}

// Response status codes.
var statusNames = map[uint64]string{
	0x00: "OK - no error",
	0x01: "Unknown error",
	0x02: "Unrecognised command",
	0x03: "Unsupported command",
	0x04: "Invalid channel specified",
	0x05: "Invalid destination",
	0x06: "Invalid parameter(s)",
	0x07: "Invalid message",
	0x08: "Invalid length field",
	0x09: "Transmit failed",
	0x0a: "Receive failed",
	0x0b: "Authorization failed",
	0x0c: "Memory allocation error",
	0x0d: "Command timed out",
	0x0e: "Unavailable",
	0x0f: "Buffer full",
	0x10: "No such job",
}
