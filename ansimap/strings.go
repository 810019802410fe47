package ansimap

var digitsTypeNames = map[uint64]string{
	0:  "Not Used",
	1:  "Dialed Number or Called Party Number",
	2:  "Calling Party Number",
	3:  "Caller Interaction",
	4:  "Routing Number",
	5:  "Billing Number",
	6:  "Destination Number",
	7:  "LATA",
	8:  "Carrier",
	9:  "Last Calling Party",
	10: "Last Called Party",
	11: "Calling Directory Number",
	12: "MSRN",
	13: "Temporary Local Directory Number",
	14: "Reference Number",
	15: "Forward Number",
}

var numberingPlanNames = map[uint64]string{
	0:  "Unknown or not applicable",
	1:  "ISDN Numbering (not used in this Standard)",
	2:  "Telephony Numbering (ITU-T Rec. E.164, E.163)",
	3:  "Data Numbering (ITU-T Rec. X.121)(not used in this Standard)",
	4:  "Telex Numbering (ITU-T Rec. F.69)(not used in this Standard)",
	5:  "Maritime Mobile Numbering (not used in this Standard)",
	6:  "Land Mobile Numbering (ITU-T Rec. E.212)",
	7:  "Private Numbering Plan (service provider defined)",
	13: "ANSI SS7 Point Code (PC) and Subsystem Number (SSN)",
	14: "Internet Protocol (IP) Address",
	15: "Reserved for extension",
}

// Numbering plans whose digits are addresses rather than digit strings.
const (
	planPointCode = 13
	planIP        = 14
)

var digitsEncodingNames = map[uint64]string{
	0: "Not used",
	1: "BCD",
	2: "IA5",
	3: "Octet String",
}

const (
	encodingBCD   = 1
	encodingIA5   = 2
	encodingOctet = 3
)

var screeningNames = map[uint64]string{
	0: "User provided, not screened",
	1: "User provided, screening passed",
	2: "User provided, screening failed",
	3: "Network provided",
}

var systemMyTypeCodeNames = map[uint64]string{
	0:  "Not used",
	1:  "EDS",
	2:  "Astronet",
	3:  "Lucent Technologies",
	4:  "Ericsson",
	5:  "GTE",
	6:  "Motorola",
	7:  "NEC",
	8:  "NORTEL",
	9:  "NovAtel",
	10: "Plexsys",
	11: "Digital Equipment Corp",
	12: "INET",
	13: "Bellcore",
	14: "Alcatel SEL",
	15: "Compaq (Tandem)",
	16: "QUALCOMM",
	17: "Aldiscon",
	18: "Celcore",
	19: "TELOS",
	20: "ADI Limited (Stanilite)",
	21: "Coral Systems",
	22: "Synacom Technology",
	23: "DSC",
	24: "MCI",
	25: "NewNet",
	26: "Sema Group Telecoms",
	27: "LG Information and Communications",
	28: "CBIS",
	29: "Siemens",
	30: "Samsung Electronics",
	31: "ReadyCom Inc.",
	32: "AG Communication Systems",
	33: "Hughes Network Systems",
	34: "Phoenix Wireless Group",
}

var authorizationDeniedNames = map[uint64]string{
	0:  "Not used",
	1:  "Delinquent account",
	2:  "Invalid serial number",
	3:  "Stolen unit",
	4:  "Duplicate unit",
	5:  "Unassigned directory number",
	6:  "Unspecified",
	7:  "Multiple access",
	8:  "Not Authorized for the MSC",
	9:  "Missing authentication parameters",
	10: "Terminal Type mismatch",
	11: "Requested Service Code Not Supported",
}

var periodNames = map[uint64]string{
	0: "Not used",
	1: "Per Call",
	2: "Hours",
	3: "Days",
	4: "Weeks",
	5: "Per Agreement",
	6: "Indefinite",
	7: "Number of calls",
}

var qualificationInformationCodeNames = map[uint64]string{
	0: "Not used",
	1: "No information",
	2: "Validation only",
	3: "Validation and profile",
	4: "Profile only",
}

var releaseReasonNames = map[uint64]string{
	0:  "Unspecified",
	1:  "Call Over Clear Forward",
	2:  "Call Over Clear Backward",
	3:  "Handoff Successful",
	4:  "Handoff Abort - call over",
	5:  "Handoff Abort - not received",
	6:  "Abnormal mobile termination",
	7:  "Abnormal switch termination",
	8:  "Special feature release",
	9:  "Session Over Clear Forward",
	10: "Session Over Clear Backward",
	11: "Clear All Services Forward",
	12: "Clear All Services Backward",
	13: "Anchor MSC was removed from the packet data session",
}

var seizureTypeNames = map[uint64]string{
	0: "Unspecified",
	1: "Loopback",
}

var trunkStatusNames = map[uint64]string{
	0: "Idle",
	1: "Blocked",
}

var featureResultNames = map[uint64]string{
	0: "Not used",
	1: "Unsuccessful",
	2: "Successful",
}

var redirectionReasonNames = map[uint64]string{
	0:  "Not used",
	1:  "Busy",
	2:  "No answer",
	3:  "Unconditional",
	4:  "No page response",
	5:  "Unavailable",
	6:  "Unroutable",
	7:  "Call accepted",
	8:  "Call refused",
	9:  "USCFvm, divert to voice mail",
	10: "USCFms, divert to an MS provided DN",
	11: "USCFnr, divert to a network registered DN",
}

var accessDeniedReasonNames = map[uint64]string{
	0:  "Not used",
	1:  "Unassigned directory number",
	2:  "Inactive",
	3:  "Busy",
	4:  "Termination denied",
	5:  "No page response",
	6:  "Unavailable",
	7:  "Service Rejected by MS",
	8:  "Service Rejected by the System",
	9:  "Service Type Mismatch",
	10: "Service Denied",
}

var originationIndicatorNames = map[uint64]string{
	0: "Not used",
	1: "Prior agreement",
	2: "Origination denied",
	3: "Local calls only",
	4: "Selected leading digits of directory number or of international E.164 number",
	5: "Selected leading digits of directory number or of international E.164 number and local calls only",
	6: "National long distance",
	7: "International calls",
	8: "Single directory number or international E.164 number",
}

var terminationRestrictionCodeNames = map[uint64]string{
	0: "Not used",
	1: "Termination denied",
	2: "Unrestricted",
	3: "Treatment for this value is not specified",
}

var usageIndicatorNames = map[uint64]string{
	0: "Unspecified",
	1: "Dual Tone Multi-Frequency",
	2: "Voice",
}

var handoffReasonNames = map[uint64]string{
	0: "Not used",
	1: "Unspecified",
	2: "Weak signal",
	3: "Off-loading",
	4: "Anticipatory",
}

var systemAccessTypeNames = map[uint64]string{
	0: "Not used",
	1: "Unspecified",
	2: "Flash request",
	3: "Autonomous registration",
	4: "Call origination",
	5: "Page response",
	6: "No access",
	7: "Power down registration",
	8: "SMS page response",
	9: "OTASP",
}

var terminalTypeNames = map[uint64]string{
	0:  "Not used",
	1:  "Not distinguished",
	2:  "IS-54-B",
	3:  "IS-136",
	4:  "J-STD-011",
	5:  "IS-136-A or TIA/EIA-136 Revision-0",
	6:  "TIA/EIA-136-A",
	7:  "TIA/EIA-136-B",
	32: "IS-95",
	33: "IS-95-A",
	34: "J-STD-008",
	35: "IS-95-B",
	36: "IS-2000",
	64: "IS-88",
	65: "IS-94",
	66: "IS-91",
	67: "J-STD-014",
	68: "TIA/EIA-553-A",
	69: "IS-91-A",
}

var denyAccessNames = map[uint64]string{
	0:  "Not used",
	1:  "Unspecified",
	2:  "SSD Update failure",
	3:  "COUNT Update failure",
	4:  "Unique Challenge failure",
	5:  "AUTHR mismatch",
	6:  "COUNT mismatch",
	7:  "Process collision",
	8:  "Missing authentication parameters",
	9:  "TerminalType mismatch",
	10: "MIN, IMSI or ESN authorization failure",
}

var cancellationTypeNames = map[uint64]string{
	0: "Not used",
	1: "Serving System Option",
	2: "Report In Call",
	3: "Discontinue",
}

var cancellationDeniedNames = map[uint64]string{
	0: "Not used",
	1: "Multiple Access",
	2: "Busy",
}

var reportNames = map[uint64]string{
	0:  "Not used",
	1:  "Unspecified security violation",
	2:  "MSID/ESN mismatch",
	3:  "RANDC mismatch",
	4:  "Reserved",
	5:  "SSD Update failed",
	6:  "Reserved",
	7:  "COUNT mismatch",
	8:  "Reserved",
	9:  "Unique Challenge failed",
	10: "Unsolicited Base Station Challenge",
	11: "SSD Update no response",
	12: "COUNT Update no response",
	13: "Unique Challenge no response",
	14: "AUTHR mismatch",
	15: "TERMTYP mismatch",
	16: "Missing authentication parameters",
}

var updateReportNames = map[uint64]string{
	0: "Not used",
	1: "Unspecified",
	2: "Successful",
	3: "Failed",
	4: "No response",
	5: "Not attempted",
}

var availabilityTypeNames = map[uint64]string{
	0: "Not used",
	1: "Unspecified MS inactivity type",
}

var deregistrationTypeNames = map[uint64]string{
	0: "Not used",
	1: "Deregister for an unspecified reason",
	2: "Deregister for an administrative reason",
	3: "Deregister due to MS power down",
}

var pageIndicatorNames = map[uint64]string{
	0: "Not used",
	1: "Page",
	2: "Listen only",
}

var terminationAccessTypeNames = map[uint64]string{
	0:   "Not used",
	1:   "Reserved for controlling system assignment",
	252: "Land-to-Mobile Directory Number access",
	253: "Land-to-Mobile National Dialing Plan access",
	254: "Mobile-to-Mobile Directory Number access",
	255: "Roamer port access",
}

var terminationTreatmentNames = map[uint64]string{
	0: "Not used",
	1: "MS Termination",
	2: "Voice Mail Storage",
	3: "Voice Mail Retrieval",
	4: "Dialogue Termination",
}

var actionCodeNames = map[uint64]string{
	0:  "Not used",
	1:  "Continue processing",
	2:  "Disconnect call",
	3:  "Disconnect call leg",
	4:  "Conference calling drop last party",
	5:  "Bridge call leg(s) to conference call",
	6:  "Drop call leg on busy or routing failure",
	7:  "Disconnect all call legs",
	8:  "Attach MSC to OTAF",
	9:  "Initiate Registration Notification",
	10: "Generate Public Encryption values",
	11: "Generate A-Key",
	12: "Perform SSD Update procedure",
	13: "Perform Re-Authentication procedure",
	14: "Release TRN",
	15: "Commit A-Key",
	16: "Release Resources",
	17: "Record NEWMSID",
	18: "Allocate Resources",
	19: "Generate Authentication Signature",
}

var alertResultNames = map[uint64]string{
	0: "Not specified",
	1: "Success",
	2: "Failure",
	3: "Denied",
	4: "Not attempted",
	5: "No page response",
	6: "Busy",
}

var pitchNames = map[uint64]string{
	0: "Medium pitch",
	1: "High pitch",
	2: "Low pitch",
	3: "Reserved",
}

var cadenceNames = map[uint64]string{
	0:  "NoTone",
	1:  "Long",
	2:  "ShortShort",
	3:  "ShortShortLong",
	4:  "ShortShort2",
	5:  "ShortLongShort",
	6:  "ShortShortShortShort",
	7:  "PBXLong",
	8:  "PBXShortShort",
	9:  "PBXShortShortLong",
	10: "PBXShortLongShort",
	11: "PBXShortShortShortShort",
	12: "PipPipPipPip",
}

var alertActionNames = map[uint64]string{
	0: "Alert without waiting to report",
	1: "Apply a reminder alert once",
}

var toneNames = map[uint64]string{
	0:   "DialTone",
	1:   "RingBack or AudibleAlerting",
	2:   "InterceptTone or MobileReorder",
	3:   "CongestionTone or ReorderTone",
	4:   "BusyTone",
	5:   "ConfirmationTone",
	6:   "AnswerTone",
	7:   "CallWaitingTone",
	8:   "OffHookTone",
	17:  "RecallDialTone",
	18:  "BargeInTone",
	20:  "PPCInsufficientTone",
	21:  "PPCWarningTone1",
	22:  "PPCWarningTone2",
	23:  "PPCWarningTone3",
	24:  "PPCDisconnectTone",
	25:  "PPCRedirectTone",
	63:  "TonesOff",
	192: "PipTone",
	193: "AbbreviatedIntercept",
	194: "AbbreviatedCongestion",
	195: "WarningTone",
	196: "DenialToneBurst",
	197: "DialToneBurst",
	250: "IncomingAdditionalCallTone",
	251: "PriorityAdditionalCallTone",
}

var standardAnnouncementNames = map[uint64]string{
	0:   "None",
	1:   "UnauthorizedUser",
	2:   "InvalidESN",
	3:   "UnauthorizedMobile",
	4:   "SuspendedOrigination",
	5:   "OriginationDenied",
	6:   "ServiceAreaDenial",
	16:  "PartialDial",
	17:  "Require1Plus",
	18:  "Require1PlusNPA",
	19:  "Require0Plus",
	20:  "Require0PlusNPA",
	21:  "Deny1Plus",
	22:  "Unsupported10plus",
	23:  "Deny10plus",
	24:  "Unsupported10XXX",
	25:  "Deny10XXX",
	26:  "Deny10XXXLocally",
	27:  "Require10Plus",
	28:  "RequireNPA",
	29:  "DenyTollOrigination",
	30:  "DenyInternationalOrigination",
	31:  "Deny0Minus",
	48:  "DenyNumber",
	49:  "AlternateOperatorServices",
	64:  "NoCircuit or AllCircuitsBusy or FacilityProblem",
	65:  "Overload",
	66:  "InternalOfficeFailure",
	67:  "NoWinkReceived",
	68:  "InterofficeLinkFailure",
	69:  "Vacant",
	70:  "InvalidPrefix or InvalidAccessCode",
	71:  "OtherDialingIrregularity",
	80:  "VacantNumber or DisconnectedNumber",
	81:  "DenyTermination",
	82:  "SuspendedTermination",
	83:  "ChangedNumber",
	84:  "InaccessibleSubscriber",
	85:  "DenyIncomingTOll",
	86:  "RoamerAccessScreening",
	87:  "RefuseCall",
	88:  "RedirectCall",
	89:  "NoPageResponse",
	90:  "NoAnswer",
	96:  "RoamerIntercept",
	97:  "GeneralInformation",
	112: "UnrecognizedFeatureCode",
	113: "UnauthorizedFeatureCode",
	114: "RestrictedFeatureCode",
	115: "InvalidModifierDigits",
	116: "SuccessfulFeatureRegistration",
	117: "SuccessfulFeatureDeRegistration",
	118: "SuccessfulFeatureActivation",
	119: "SuccessfulFeatureDeActivation",
	120: "InvalidForwardToNumber",
	121: "CourtesyCallWarning",
	128: "EnterPINSendPrompt",
	129: "EnterPINPrompt",
	130: "ReEnterPINSendPrompt",
	131: "ReEnterPINPrompt",
	132: "EnterOldPINSendPrompt",
	133: "EnterOldPINPrompt",
	134: "EnterNewPINSendPrompt",
	135: "EnterNewPINPrompt",
	136: "ReEnterNewPINSendPrompt",
	137: "ReEnterNewPINPrompt",
	138: "EnterPasswordPrompt",
	139: "EnterDirectoryNumberPrompt",
	140: "ReEnterDirectoryNumberPrompt",
	141: "EnterFeatureCodePrompt",
	142: "EnterEnterCreditCardNumberPrompt",
	143: "EnterDestinationNumberPrompt",
	152: "PPCInsufficientAccountBalance",
	153: "PPCFiveMinuteWarning",
	154: "PPCThreeMinuteWarning",
	155: "PPCTwoMinuteWarning",
	156: "PPCOneMinuteWarning",
	157: "PPCDisconnect",
	158: "PPCRedirect",
}

var smsChargeIndicatorNames = map[uint64]string{
	0: "Not used",
	1: "No charge",
	2: "Charge original originator",
	3: "Charge original destination",
}

var smsNotificationIndicatorNames = map[uint64]string{
	0: "Not used",
	1: "Notify when available",
	2: "Do not notify when available",
}

var smsAccessDeniedReasonNames = map[uint64]string{
	0: "Not used",
	1: "Denied",
	2: "Postponed",
	3: "Unavailable",
	4: "Invalid",
}

var smsCauseCodeNames = map[uint64]string{
	0:   "Address vacant",
	1:   "Address translation failure",
	2:   "Network resource shortage",
	3:   "Network failure",
	4:   "Invalid Teleservice ID",
	5:   "Other network problem",
	6:   "Unsupported network interface",
	32:  "No page response",
	33:  "Destination busy",
	34:  "No acknowledgement",
	35:  "Destination resource shortage",
	36:  "SMS delivery postponed",
	37:  "Destination out of service",
	38:  "Destination no longer at this address",
	39:  "Other terminal problem",
	64:  "Radio interface resource shortage",
	65:  "Radio interface incompatibility",
	66:  "Other radio interface problem",
	67:  "Unsupported Base Station Capability",
	96:  "Encoding problem",
	97:  "Service origination denied",
	98:  "Service termination denied",
	99:  "Supplementary service not supported",
	100: "Service not supported",
	101: "Reserved",
	102: "Missing expected parameter",
	103: "Missing mandatory parameter",
	104: "Unrecognized parameter value",
	105: "Unexpected parameter value",
	106: "User Data size error",
	107: "Other general problems",
	108: "Session not active",
}

var teleserviceNames = map[uint64]string{
	0:     "Not used",
	1:     "Reserved for maintenance",
	4096:  "AMPS Extended Protocol Enhanced Services",
	4097:  "CDMA Cellular Paging Teleservice",
	4098:  "CDMA Cellular Messaging Teleservice",
	4099:  "CDMA Voice Mail Notification",
	4100:  "CDMA Wireless Application Protocol (WAP)",
	4101:  "CDMA Wireless Enhanced Messaging Teleservice (WEMT)",
	4102:  "CDMA Service Category Programming Teleservice (SCPT)",
	4103:  "CDMA Card Application Toolkit Protocol Teleservice (CATPT)",
	32513: "TDMA Cellular Messaging Teleservice",
	32514: "TDMA Cellular Paging Teleservice (CPT-136)",
	32515: "TDMA Over-the-Air Activation Teleservice (OATS)",
	32516: "TDMA Over-the-Air Programming Teleservice (OPTS)",
	32517: "TDMA General UDP Transport Service (GUTS)",
	32576: "Reserved",
}

var serviceIndicatorNames = map[uint64]string{
	0: "Undefined Service",
	1: "CDMA OTASP Service",
	2: "TDMA OTASP Service",
	3: "CDMA OTAPA Service",
	4: "CDMA Position Determination Service",
	5: "AMPS Position Determination Service",
}

const (
	serviceCDMAOTASP = 1
	serviceCDMAOTAPA = 3
	serviceCDMAPDS   = 4
)

var cdmaServiceOptionNames = map[uint64]string{
	1:     "Basic Variable Rate Voice Service (8 kbps)",
	2:     "Mobile Station Loopback (8 kbps)",
	3:     "Enhanced Variable Rate Voice Service (8 kbps)",
	4:     "Asynchronous Data Service (9.6 kbps)",
	5:     "Group 3 Facsimile (9.6 kbps)",
	6:     "Short Message Services (Rate Set 1)",
	7:     "Packet Data Service: Internet or ISO Protocol Stack (9.6 kbps)",
	8:     "Packet Data Service: CDPD Protocol Stack (9.6 kbps)",
	9:     "Mobile Station Loopback (13 kbps)",
	12:    "Asynchronous Data Service (14.4 or 9.6 kbps)",
	13:    "Group 3 Facsimile (14.4 or 9.6 kbps)",
	14:    "Short Message Services (Rate Set 2)",
	15:    "Packet Data Service: Internet or ISO Protocol Stack (14.4 kbps)",
	17:    "High Rate Voice Service (13 kbps)",
	18:    "Over-the-Air Parameter Administration (Rate Set 1)",
	19:    "Over-the-Air Parameter Administration (Rate Set 2)",
	20:    "Group 3 Analog Facsimile (Rate Set 1)",
	21:    "Group 3 Analog Facsimile (Rate Set 2)",
	22:    "High Speed Packet Data Service: Internet or ISO Protocol Stack (RS1 forward, RS1 reverse)",
	33:    "3G High Speed Packet Data",
	35:    "Location Services (PDS), Rate Set 1 (9.6 kbps)",
	36:    "Location Services (PDS), Rate Set 2 (14.4 kbps)",
	68:    "Enhanced Variable Rate Voice Service (EVRC-B)",
	4099:  "Proprietary QUALCOMM Incorporated",
	32768: "QCELP (13 kbps)",
}

var triggerTypeNames = map[uint64]string{
	0:   "Unspecified",
	1:   "All Calls",
	2:   "Double Introducing Star",
	3:   "Single Introducing Star",
	4:   "Reserved [for Home System Feature Code",
	5:   "Double Introducing Pound",
	6:   "Single Introducing Pound",
	7:   "Revertive Call",
	8:   "0 Digit",
	9:   "1 Digit",
	10:  "2 Digit",
	11:  "3 Digit",
	12:  "4 Digit",
	13:  "5 Digit",
	14:  "6 Digit",
	15:  "7 Digit",
	16:  "8 Digit",
	17:  "9 Digit",
	18:  "10 Digit",
	19:  "11 Digit",
	20:  "12 Digit",
	21:  "13 Digit",
	22:  "14 Digit",
	23:  "15 Digit",
	24:  "Local Call",
	25:  "Intra-LATA Toll Call",
	26:  "Inter-LATA Toll Call",
	27:  "World Zone Call",
	28:  "International Call",
	29:  "Unrecognized Number",
	30:  "Prior Agreement",
	31:  "Specific Called Party Digit String",
	32:  "Mobile Termination",
	33:  "Advanced Termination",
	34:  "Location",
	35:  "Locally Allowed Specific Digit String",
	36:  "Origination Attempt Authorized",
	37:  "Calling Routing Address Available",
	38:  "Initial Termination",
	39:  "Called Routing Address Available",
	40:  "O Answer",
	41:  "O Disconnect",
	42:  "O Called Party Busy",
	43:  "O No Answer",
	64:  "Terminating Resource Available",
	65:  "T Busy",
	66:  "T No Answer",
	67:  "T No Page Response",
	68:  "T Unroutable",
	69:  "T Answer",
	70:  "T Disconnect",
	220: "Reserved for TDP-R DP Type value",
	221: "Reserved for TDP-N DP Type value",
	222: "Reserved for EDP-R DP Type value",
	223: "Reserved for EDP-N DP Type value",
}

var failureTypeNames = map[uint64]string{
	0: "Not used",
	1: "Call abandoned",
	2: "Resource disconnect",
	3: "Failure at MSC",
	4: "SSFT expiration",
}

var setupResultNames = map[uint64]string{
	0: "Not used",
	1: "Unsuccessful",
	2: "Successful",
}

var geographicAuthorizationNames = map[uint64]string{
	0: "Not used",
	1: "Authorized for all MSCIDs served by the VLR",
	2: "Authorized for this MSCID only",
	3: "Authorized for this MSCID and Cell ID only",
	4: "Authorized for this MSCID and Location Area ID only",
}

var preferredLanguageNames = map[uint64]string{
	0: "Unspecified",
	1: "English",
	2: "French",
	3: "Spanish",
	4: "German",
	5: "Portuguese",
}

var messageWaitingTypeNames = map[uint64]string{
	0: "Not used",
	1: "Voice Messages",
	2: "Short Message Services (SMS) messages",
	3: "Group 3 (G3) Fax messages",
}

var dmhRedirectionIndicatorNames = map[uint64]string{
	0:  "Not used",
	1:  "CFU",
	2:  "CFB",
	3:  "CFNA",
	4:  "CFO",
	5:  "CD Unspecified",
	6:  "CD PSTN",
	7:  "CD Private",
	8:  "PSTN Tandem",
	9:  "Private Tandem",
	10: "Busy",
	11: "Inactive",
	12: "Unassigned",
	13: "Termination Denied",
	14: "CD Failure",
	15: "ECT",
	16: "MAH",
	17: "FA",
	18: "Abandoned Call Leg",
	19: "PCA Call Refused",
	20: "PCA TCAP Problem",
	21: "Voice Mail Retrieval",
	22: "Voice Mail Storage",
}

var cdmaBandClassNames = map[uint64]string{
	0:  "800 MHz Cellular System",
	1:  "1.850 to 1.990 GHz Broadband PCS",
	2:  "872 to 960 MHz TACS Band",
	3:  "832 to 925 MHz JTACS Band",
	4:  "1.750 to 1.870 GHz Korean PCS",
	5:  "450 MHz NMT",
	6:  "2 GHz IMT-2000 Band",
	7:  "700 MHz",
	8:  "1800 MHz",
	9:  "900 MHz",
	10: "Secondary 800 MHz",
}

var pacaIndicatorLevelNames = map[uint64]string{
	0:  "Not used",
	1:  "Priority Level 1",
	2:  "Priority Level 2",
	3:  "Priority Level 3",
	4:  "Priority Level 4",
	5:  "Priority Level 5",
	6:  "Priority Level 6",
	7:  "Priority Level 7",
	8:  "Priority Level 8",
	9:  "Priority Level 9",
	10: "Priority Level 10",
	11: "Priority Level 11",
	12: "Priority Level 12",
	13: "Priority Level 13",
	14: "Priority Level 14",
	15: "Priority Level 15",
}

var authenticationCapabilityNames = map[uint64]string{
	0:   "Not used",
	1:   "No authentication required",
	2:   "Authentication required",
	128: "Authentication required and UIM capable",
}

var smsMessageCountNames = map[uint64]string{
	0: "No more pending SMS messages",
}

var conditionallyDeniedReasonNames = map[uint64]string{
	0: "Not used",
	1: "Waitable",
}

var ssdNotSharedNames = map[uint64]string{
	0: "Not used",
	1: "Discard SSD",
}

var updateCountNames = map[uint64]string{
	0: "Not used",
	1: "Update COUNT",
}

var signalingEncryptionNames = map[uint64]string{
	0: "Not used",
	1: "Signaling Message Encryption enabling not attempted",
	2: "Signaling Message Encryption enabling no response",
	3: "Signaling Message Encryption is enabled",
	4: "Signaling Message Encryption enabling failed",
}

var voicePrivacyReportNames = map[uint64]string{
	0: "Not used",
	1: "Voice Privacy not attempted",
	2: "Voice Privacy no response",
	3: "Voice Privacy is active",
	4: "Voice Privacy failed",
}

var otaspResultCodeNames = map[uint64]string{
	0: "Accepted - Successful",
	1: "Rejected - Unknown cause",
	2: "Computation Failure - E.g., unable to compute A-key",
	3: "CSC Rejected - CSC challenge failure",
	4: "Unrecognized OTASPCallEntry",
	5: "Unsupported AKeyProtocolVersion(s)",
	6: "Unable to Commit",
}

var failureCauseNames = map[uint64]string{
	0: "Not used",
	1: "Failure",
}

var nampsCallModeNames = map[uint64]string{
	0: "AMPS",
	1: "NAMPS",
}

var bsmcStatusNames = map[uint64]string{
	0: "Same BSMC",
	1: "Different BSMC",
}

var controlChannelModeNames = map[uint64]string{
	0: "Unknown",
	1: "MS is in Analog CC Mode",
	2: "MS is in Digital CC Mode",
	3: "MS is in NAMPS CC Mode",
}

var tdmaServiceCodeNames = map[uint64]string{
	0: "Analog Speech Only",
	1: "Digital Speech Only",
	2: "Analog or Digital Speech, Analog Preferred",
	3: "Analog or Digital Speech, Digital Preferred",
	4: "Asynchronous Data",
	5: "G3 Fax",
	6: "Not Used (Service Rejected)",
	7: "STU III",
}

var tdmaBandwidthNames = map[uint64]string{
	0: "Half-Rate Digital Traffic Channel Only",
	1: "Full-Rate Digital Traffic Channel Only",
	2: "Half-Rate or Full-Rate Digital Traffic Channel - Full-Rate Preferred",
	3: "Half-Rate or Full-Rate Digital Traffic Channel - Half-Rate Preferred",
	4: "Double Full-Rate Digital Traffic Channel Only",
	5: "Triple Full-Rate Digital Traffic Channel Only",
}

var cdmaPowerCombinedNames = map[uint64]string{
	0: "Not combined",
	1: "Combined",
}

var roamingIndicationNames = map[uint64]string{
	0:  "Roaming Indicator On",
	1:  "Roaming Indicator Off",
	2:  "Roaming Indicator Flashing",
	3:  "Out of Neighborhood",
	4:  "Out of Building",
	5:  "Roaming - Preferred System",
	6:  "Roaming - Available System",
	7:  "Roaming - Alliance Partner",
	8:  "Roaming - Premium Partner",
	9:  "Roaming - Full Service Functionality",
	10: "Roaming - Partial Service Functionality",
	11: "Roaming Banner On",
	12: "Roaming Banner Off",
}

var serviceRedirectionCauseNames = map[uint64]string{
	0: "Not used",
	1: "Normal Registration",
	2: "System Not Found",
	3: "Protocol Mismatch",
	4: "Registration Rejection",
	5: "Wrong SID",
	6: "Wrong NID",
}

var suspiciousAccessNames = map[uint64]string{
	0: "Not used",
	1: "Anomalous Digits",
	2: "Unspecified",
}

var releaseCauseNames = map[uint64]string{
	0: "Unspecified",
	1: "Calling Party",
	2: "Called Party",
	3: "Commanded Disconnect",
}

var callStatusNames = map[uint64]string{
	0: "Not used",
	1: "Call Setup in Progress",
	2: "Called Party",
	3: "Locally Allowed Call - No Action",
}

var msidUsageNames = map[uint64]string{
	0: "Not used",
	1: "MIN last used",
	2: "IMSI last used",
	3: "Reserved",
}

var positionRequestTypeNames = map[uint64]string{
	0: "Not used",
	1: "Initial Position",
	2: "Return the updated position",
	3: "Return the updated or last known position",
	4: "Reserved for LSP interface",
}

var positionResultNames = map[uint64]string{
	0:  "Not used",
	1:  "Initial position returned",
	2:  "Updated position returned",
	3:  "Last known position returned",
	4:  "Requested position is not available",
	5:  "Caller disconnected",
	6:  "Caller has handed-off",
	7:  "Identified MS is inactive or has roamed to another system",
	8:  "Unresponsive",
	9:  "Identified MS is responsive, but refused position request",
	10: "System Failure",
	11: "MSID is not known",
	12: "Callback number is not known",
	13: "Improper request",
	14: "Mobile information returned",
	15: "Signal not detected",
	16: "PDE Timeout",
	17: "Position pending",
	18: "TDMA MAHO Information Returned",
	19: "TDMA MAHO Information is not available",
}

var positionSourceNames = map[uint64]string{
	0:  "Not used",
	1:  "Network Unspecified",
	2:  "Network AOA (Angle of Arrival)",
	3:  "Network TOA (Time of Arrival)",
	4:  "Network TDOA (Time Difference of Arrival)",
	5:  "Network RF Fingerprinting",
	6:  "Network Cell/Sector",
	7:  "Network Cell/Sector with Timing",
	16: "Handset Unspecified",
	17: "Handset GPS",
	18: "Handset AGPS (Assisted GPS)",
	19: "Handset EOTD (Enhanced Observed Time Difference)",
	20: "Handset AFLT (Advanced Forward Link Trilateration)",
	21: "Handset EFLT (Enhanced Forward Link Trilateration)",
}

var lirModeNames = map[uint64]string{
	0: "Unspecified",
	1: "Home Network Only",
	2: "Home Network and Roaming",
}

var controlTypeNames = map[uint64]string{
	0: "Not used",
	1: "Service Management System Initiated Control",
	2: "SCF Overload Initiated Control",
}
