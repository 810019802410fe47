package ansimap

import "fmt"

// Operation code families. Only TIA/EIA-41 operations are decoded.
const (
	familyTIA41 = 0x09
)

// Operation specifiers that change how the rest of the message decodes.
const (
	opRegistrationNotification = 13
	opOTASPRequest             = 56
)

// direction holds the parameters an invoke or a return result of an
// operation must carry.
type direction struct {
	mandatory []uint32
}

// operation describes one ANSI-41 operation. Both directions decode as a
// parameter set; they differ in the parameters they require.
type operation struct {
	name   string
	invoke direction
	result direction
	// ota marks operations whose bearer data is an IS-683 payload.
	ota bool
}

// Parameter identifiers used in the mandatory lists below.
const (
	pBillingID             = 0x81
	pServingCellID         = 0x82
	pTargetCellID          = 0x83
	pDigits                = 0x84
	pChannelData           = 0x85
	pInterMSCCircuitID     = 0x86
	pInterSwitchCount      = 0x87
	pESN                   = 0x89
	pReleaseReason         = 0x8a
	pStationClassMark      = 0x8c
	pSeizureType           = 0x8f
	pQualificationInfo     = 0x91
	pFeatureResult         = 0x92
	pRedirectionReason     = 0x93
	pMSCID                 = 0x95
	pSystemMyTypeCode      = 0x96
	pSystemAccessType      = 0x9f22
	pAuthResponseBS        = 0x9f24
	pRAND                  = 0x9f28
	pRANDBS                = 0x9f29
	pReportType            = 0x9f2c
	pSystemCapabilities    = 0x9f31
	pAlertCode             = 0x9f4b
	pDestinationDigits     = 0x9f57
	pOriginationTriggers   = 0x9f62
	pSenderIdentification  = 0x9f67
	pSMSBearerData         = 0x9f69
	pSMSTeleservice        = 0x9f74
	pTransactionCapability = 0x9f7b
	pDigitCollection       = 0x9f810b
	pRandomValidTime       = 0x9f8114
	pDatabaseKey           = 0x9f817c
	pModificationRequests  = 0xbf8207
	pModificationResults   = 0xbf8208
	pServiceDataElements   = 0xbf820e
	pTimeDateOffset        = 0x9f8212
	pTimeOfDay             = 0x9f8213
	pTriggerType           = 0x9f8215
)

func need(ids ...uint32) direction { return direction{mandatory: ids} }

var operations = map[int]operation{
	1:  {name: "Handoff Measurement Request", invoke: need(pServingCellID)},
	2:  {name: "Facilities Directive", invoke: need(pBillingID, pChannelData, pInterMSCCircuitID, pInterSwitchCount, pServingCellID, pStationClassMark, pTargetCellID), result: need(pChannelData)},
	3:  {name: "Mobile On Channel"},
	4:  {name: "Handoff Back", invoke: need(pBillingID, pInterMSCCircuitID, pInterSwitchCount, pServingCellID, pTargetCellID), result: need(pChannelData)},
	5:  {name: "Facilities Release", invoke: need(pInterMSCCircuitID, pReleaseReason)},
	6:  {name: "Qualification Request", invoke: need(pESN, pQualificationInfo, pSystemMyTypeCode), result: need(pSystemMyTypeCode)},
	7:  {name: "Qualification Directive", invoke: need(pESN, pQualificationInfo, pSystemMyTypeCode)},
	8:  {name: "Blocking", invoke: need(pInterMSCCircuitID)},
	9:  {name: "Unblocking", invoke: need(pInterMSCCircuitID)},
	10: {name: "Reset Circuit", invoke: need(pInterMSCCircuitID)},
	11: {name: "Trunk Test", invoke: need(pInterMSCCircuitID, pSeizureType)},
	12: {name: "Trunk Test Disconnect", invoke: need(pInterMSCCircuitID)},
	13: {name: "Registration Notification", invoke: need(pESN, pMSCID, pQualificationInfo, pSystemMyTypeCode), result: need(pSystemMyTypeCode)},
	14: {name: "Registration Cancellation", invoke: need(pESN)},
	15: {name: "Location Request", invoke: need(pBillingID, pDigits, pMSCID, pSystemMyTypeCode), result: need(pMSCID)},
	16: {name: "Routing Request", invoke: need(pBillingID, pESN, pMSCID, pSystemMyTypeCode), result: need(pMSCID)},
	17: {name: "Feature Request", invoke: need(pDigits, pESN), result: need(pFeatureResult)},
	18: {name: "Reserved 18 (Service Profile Request)"},
	19: {name: "Reserved 19 (Service Profile Directive)"},
	20: {name: "Unreliable Roamer Data Directive", invoke: need(pMSCID, pSystemMyTypeCode)},
	21: {name: "Reserved 21 (Call Data Request)"},
	22: {name: "MS Inactive", invoke: need(pESN)},
	23: {name: "Transfer To Number Request", invoke: need(pESN, pRedirectionReason, pSystemMyTypeCode), result: need(pDigits)},
	24: {name: "Redirection Request", invoke: need(pBillingID, pESN, pRedirectionReason)},
	25: {name: "Handoff To Third", invoke: need(pInterMSCCircuitID, pInterSwitchCount, pMSCID, pServingCellID)},
	26: {name: "Flash Request", invoke: need(pDigits, pESN, pInterMSCCircuitID)},
	27: {name: "Authentication Directive", invoke: need(pESN)},
	28: {name: "Authentication Request", invoke: need(pESN, pMSCID, pSystemAccessType, pSystemCapabilities)},
	29: {name: "Base Station Challenge", invoke: need(pESN, pRANDBS), result: need(pAuthResponseBS)},
	30: {name: "Authentication Failure Report", invoke: need(pESN, pSystemMyTypeCode, pReportType)},
	31: {name: "Count Request", invoke: need(pESN)},
	32: {name: "Inter System Page", invoke: need(pBillingID, pESN)},
	33: {name: "Unsolicited Response", invoke: need(pESN)},
	34: {name: "Bulk Deregistration", invoke: need(pSenderIdentification)},
	35: {name: "Handoff Measurement Request 2", invoke: need(pServingCellID)},
	36: {name: "Facilities Directive 2", invoke: need(pBillingID, pInterMSCCircuitID, pInterSwitchCount, pServingCellID)},
	37: {name: "Handoff Back 2", invoke: need(pBillingID, pInterMSCCircuitID, pInterSwitchCount, pServingCellID)},
	38: {name: "Handoff To Third 2", invoke: need(pInterMSCCircuitID, pInterSwitchCount, pMSCID, pServingCellID)},
	39: {name: "Authentication Directive Forward", invoke: need(pInterMSCCircuitID)},
	40: {name: "Authentication Status Report", invoke: need(pESN, pQualificationInfo, pSystemMyTypeCode)},
	41: {name: "Reserved 41"},
	42: {name: "Information Directive", invoke: need(pAlertCode)},
	43: {name: "Information Forward", invoke: need(pInterMSCCircuitID)},
	44: {name: "Inter System Answer", invoke: need(pESN)},
	45: {name: "Inter System Page 2", invoke: need(pESN)},
	46: {name: "Inter System Setup", invoke: need(pInterMSCCircuitID)},
	47: {name: "Origination Request", invoke: need(pBillingID, pDigits, pESN, pMSCID, pOriginationTriggers, pTransactionCapability)},
	48: {name: "Random Variable Request", invoke: need(pMSCID, pServingCellID), result: need(pRAND, pRandomValidTime)},
	49: {name: "Redirection Directive", invoke: need(pBillingID, pDigits, pESN)},
	50: {name: "Remote User Interaction Directive", invoke: need(pDigitCollection), result: need(pDigits)},
	51: {name: "SMS Delivery Backward", invoke: need(pSMSBearerData)},
	52: {name: "SMS Delivery Forward", invoke: need(pInterMSCCircuitID, pSMSBearerData)},
	53: {name: "SMS Delivery Point to Point", invoke: need(pSMSBearerData, pSMSTeleservice)},
	54: {name: "SMS Notification", invoke: need(pESN)},
	55: {name: "SMS Request", invoke: need(pESN)},
	56: {name: "OTASP Request", ota: true},
	57: {name: "Information Backward", invoke: need(pInterMSCCircuitID)},
	58: {name: "Change Facilities"},
	59: {name: "Change Service"},
	60: {name: "Parameter Request"},
	61: {name: "TMSI Directive"},
	62: {name: "Reserved 62"},
	63: {name: "Service Request"},
	64: {name: "Analyzed Information Request", invoke: need(pBillingID, pDigits, pESN, pMSCID, pTriggerType)},
	65: {name: "Connection Failure Report"},
	66: {name: "Connect Resource", invoke: need(pDestinationDigits)},
	67: {name: "Disconnect Resource"},
	68: {name: "Facility Selected and Available", invoke: need(pBillingID, pESN, pMSCID, pTriggerType)},
	69: {name: "Instruction Request"},
	70: {name: "Modify", invoke: need(pDatabaseKey, pModificationRequests), result: need(pModificationResults)},
	71: {name: "Reset Timer"},
	72: {name: "Search", invoke: need(pDatabaseKey, pServiceDataElements)},
	73: {name: "Seize Resource"},
	74: {name: "SRF Directive"},
	75: {name: "T Busy", invoke: need(pBillingID, pMSCID, pTriggerType)},
	76: {name: "T No Answer", invoke: need(pBillingID, pMSCID, pTriggerType)},
	77: {name: "Release"},
	78: {name: "SMS Delivery Point to Point Ack"},
	79: {name: "Message Directive"},
	80: {name: "Bulk Disconnection"},
	81: {name: "Call Control Directive", invoke: need(pBillingID, pESN, pMSCID)},
	82: {name: "O Answer", invoke: need(pBillingID, pESN, pMSCID, pTimeDateOffset, pTimeOfDay, pTriggerType)},
	83: {name: "O Disconnect", invoke: need(pBillingID, pESN, pMSCID, pTimeDateOffset, pTimeOfDay, pTriggerType)},
	84: {name: "Call Recovery Report"},
	85: {name: "T Answer", invoke: need(pBillingID, pESN, pMSCID, pTimeDateOffset, pTimeOfDay, pTriggerType)},
	86: {name: "T Disconnect", invoke: need(pBillingID, pESN, pMSCID, pTimeDateOffset, pTimeOfDay, pTriggerType)},
	87: {name: "Unreliable Call Data", invoke: need(pMSCID)},
	88: {name: "O Called Party Busy", invoke: need(pBillingID, pMSCID, pTriggerType)},
	89: {name: "O No Answer", invoke: need(pBillingID, pMSCID, pTriggerType)},
	90: {name: "Position Request"},
	91: {name: "Position Request Forward"},
	92: {name: "Call Termination Report"},
	93: {name: "Geo Position Directive"},
	94: {name: "Geo Position Request"},
	95: {name: "Inter System Position Request"},
	96: {name: "Inter System Position Request Forward"},
	97: {name: "ACG Directive"},
	98: {name: "Roamer Database Verification Request"},

	99:  {name: "Add Service"},
	100: {name: "Drop Service"},
}

// OperationName names an ANSI-41 operation specifier.
func OperationName(code int) string {
	if op, ok := operations[code]; ok {
		return op.name
	}
	return fmt.Sprintf("Unknown ANSI-41 Operation (%d)", code)
}

// missing returns the required identifiers not in seen, in table order.
func (d direction) missing(seen []uint32) []uint32 {
	var out []uint32
next:
	for _, id := range d.mandatory {
		for _, s := range seen {
			if s == id {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}
