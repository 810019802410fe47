package ansimap

// Parameter identifiers by encoded width. A lookup tries the one octet
// table first, so an entry here shadows any longer identifier that starts
// with the same octets.
//
// The tables are filled in init: decoders such as paramList resolve
// identifiers through them again.
var tier1, tier2, tier3 map[uint32]paramEntry

func init() {
	tier1 = map[uint32]paramEntry{
		0x81: {"Billing ID", paramBillingID},
		0x82: {"Serving Cell ID", paramServingCellID},
		0x83: {"Target Cell ID", paramServingCellID},
		0x84: {"Digits", paramDigits},
		0x85: {"Channel Data", paramChannelData},
		0x86: {"Inter MSC Circuit ID", paramInterMSCCircuitID},
		0x87: {"Inter Switch Count", paramInterSwitchCount},
		0x88: {"Mobile Identification Number", paramMIN},
		0x89: {"Electronic Serial Number", paramESN},
		0x8a: {"Release Reason", enumParam("Reason", releaseReasonNames)},
		0x8b: {"Signal Quality", paramSignalQuality},
		0x8c: {"Station Class Mark", paramStationClassMark},
		0x8d: {"Authorization Denied", enumParam("Reason", authorizationDeniedNames)},
		0x8e: {"Authorization Period", paramAuthorizationPeriod},
		0x8f: {"Seizure Type", enumParam("Seizure Type", seizureTypeNames)},
		0x90: {"Trunk Status", enumParam("Trunk Status", trunkStatusNames)},
		0x91: {"Qualification Information Code", enumParam("Qualification Information", qualificationInformationCodeNames)},
		0x92: {"Feature Result", enumParam("Result", featureResultNames)},
		0x93: {"Redirection Reason", enumParam("Reason", redirectionReasonNames)},
		0x94: {"Access Denied Reason", enumParam("Reason", accessDeniedReasonNames)},
		0x95: {"MSCID", paramMSCID},
		0x96: {"System My Type Code", paramSystemMyTypeCode},
		0x97: {"Origination Indicator", enumParam("Allowed Call Types", originationIndicatorNames)},
		0x98: {"Termination Restriction Code", enumParam("Value", terminationRestrictionCodeNames)},
		0x99: {"Calling Features Indicator", paramCallingFeaturesIndicator},
		0x9a: {"Faulty Parameter", paramFaultyParameter},
		0x9b: {"Usage Indicator", enumParam("Usage Indicator", usageIndicatorNames)},
		0x9c: {"TDMA Channel Data", paramTDMAChannelData},
		0x9d: {"TDMA Call Mode", paramTDMACallMode},
		0x9e: {"Handoff Reason", enumParam("Reason", handoffReasonNames)},
	}

	tier2 = map[uint32]paramEntry{
		0x9f1f: {"TDMA Burst Indicator", paramTDMABurstIndicator},
		0x9f20: {"PC_SSN", paramPCSSN},
		0x9f21: {"Location Area ID", paramLocationAreaID},
		0x9f22: {"System Access Type", enumParam("Type", systemAccessTypeNames)},
		0x9f23: {"Authentication Response", paramAuthResponse},
		0x9f24: {"Authentication Response Base Station", paramAuthResponse},
		0x9f25: {"Authentication Response Unique Challenge", paramAuthResponse},
		0x9f26: {"Call History Count", paramCallHistoryCount},
		0x9f27: {"Confidentiality Modes", paramConfidentialityModes},
		0x9f28: {"Random Variable", paramRandomVariable(4, "RAND")},
		0x9f29: {"Random Variable Base Station", paramRandomVariable(4, "RANDBS")},
		0x9f2a: {"Random Variable SSD", paramRandomVariable(7, "RANDSSD")},
		0x9f2b: {"Random Variable Unique Challenge", paramRandomVariable(3, "RANDU")},
		0x9f2c: {"Report Type", enumParam("Type", reportNames)},
		0x9f2d: {"Signaling Message Encryption Key", paramSignalingMessageEncryptionKey},
		0x9f2e: {"Shared Secret Data", paramSharedSecretData},
		0x9f2f: {"Terminal Type", enumParam("Type", terminalTypeNames)},
		0x9f30: {"Voice Privacy Mask", paramVoicePrivacyMask},
		0x9f31: {"System Capabilities", paramSystemCapabilities},
		0x9f32: {"Deny Access", enumParam("Reason", denyAccessNames)},
		0x9f33: {"Update Count", enumParam("Value", updateCountNames)},
		0x9f34: {"SSD Not Shared", enumParam("Value", ssdNotSharedNames)},
		0x9f35: {"Extended MSCID", paramExtendedMSCID},
		0x9f36: {"Extended System My Type Code", paramExtendedSystemMyTypeCode},
		0x9f37: {"Control Channel Data", paramControlChannelData},
		0x9f38: {"System Access Data", paramSystemAccessData},
		0x9f39: {"Cancellation Denied", enumParam("Indication", cancellationDeniedNames)},
		0x9f3a: {"Border Cell Access", paramBorderCellAccess},
		0x9f3b: {"CDMA Station Class Mark", paramCDMAStationClassMark},
		0x9f3c: {"CDMA Serving One Way Delay", paramCDMAOneWayDelay},
		0x9f3d: {"CDMA Target One Way Delay", paramCDMAOneWayDelay},
		0x9f3e: {"CDMA Call Mode", paramCDMACallMode},
		0x9f3f: {"CDMA Channel Data", paramCDMAChannelData},
		0x9f40: {"CDMA Signal Quality", paramCDMASignalQuality},
		0x9f41: {"CDMA Pilot Strength", paramCDMAPilotStrength},
		0x9f42: {"CDMA Mobile Protocol Revision", paramCDMAMobileProtocolRevision},
		0x9f43: {"CDMA Private Long Code Mask", paramCDMAPrivateLongCodeMask},
		0x9f44: {"CDMA Code Channel", paramCDMACodeChannel},
		0x9f45: {"CDMA Search Window", paramCDMASearchWindow},
		0x9f46: {"MS Location", paramMSLocation},
		0x9f47: {"Page Indicator", enumParam("Page", pageIndicatorNames)},
		0x9f48: {"Received Signal Quality", paramSignalQuality},
		0x9f49: {"Deregistration Type", enumParam("Type", deregistrationTypeNames)},
		0x9f4a: {"NAMPS Channel Data", paramNAMPSChannelData},
		0x9f4b: {"Alert Code", paramAlertCode},
		0x9f4c: {"Announcement Code", paramAnnouncementCode},
		0x9f4d: {"Authentication Algorithm Version", uintParam(1, "Version")},
		0x9f4e: {"Authentication Capability", paramAuthenticationCapability},
		0x9f4f: {"Call History Count Expected", paramCallHistoryCount},
		0x9f50: {"Calling Party Number Digits 1", paramDigits},
		0x9f51: {"Calling Party Number Digits 2", paramDigits},
		0x9f52: {"Calling Party Number String 1", paramDigits},
		0x9f53: {"Calling Party Number String 2", paramDigits},
		0x9f54: {"Calling Party Subaddress", paramSubaddress},
		0x9f55: {"Cancellation Type", enumParam("Type", cancellationTypeNames)},
		0x9f56: {"Carrier Digits", paramDigits},
		0x9f57: {"Destination Digits", paramDigits},
		0x9f58: {"DMH Redirection Indicator", enumParam("Redirection Indicator", dmhRedirectionIndicatorNames)},
		0xbf59: {"Inter System Termination", paramList},
		0x9f5a: {"Availability Type", enumParam("Type", availabilityTypeNames)},
		0xbf5b: {"Local Termination", paramList},
		0x9f5c: {"Message Waiting Notification Count", paramMessageWaitingNotificationCount},
		0x9f5d: {"Mobile Directory Number", paramMobileDirectoryNumber},
		0x9f5e: {"MSCID Number", paramDigits},
		0xbf5f: {"PSTN Termination", paramList},
		0x9f60: {"No Answer Time", paramNoAnswerTime},
		0x9f61: {"One Time Feature Indicator", paramOneTimeFeatureIndicator},
		0x9f62: {"Origination Triggers", paramOriginationTriggers},
		0x9f63: {"RANDC", fixedOctetParam(1, "RANDC")},
		0x9f64: {"Redirecting Number Digits", paramDigits},
		0x9f65: {"Redirecting Number String", paramDigits},
		0x9f66: {"Redirecting Number Subaddress", paramSubaddress},
		0x9f67: {"Sender Identification Number", paramSenderIdentificationNumber},
		0x9f68: {"SMS Address", paramSMSAddress},
		0x9f69: {"SMS Bearer Data", paramSMSBearerData},
		0x9f6a: {"SMS Charge Indicator", paramSMSChargeIndicator},
		0x9f6b: {"SMS Destination Address", paramSMSAddress},
		0x9f6c: {"SMS Message Count", paramSMSMessageCount},
		0x9f6d: {"SMS Notification Indicator", paramSMSNotificationIndicator},
		0x9f6e: {"SMS Original Destination Address", paramSMSAddress},
		0x9f6f: {"SMS Original Destination Subaddress", paramSubaddress},
		0x9f70: {"SMS Original Originating Address", paramSMSAddress},
		0x9f71: {"SMS Original Originating Subaddress", paramSubaddress},
		0x9f72: {"SMS Originating Address", paramSMSAddress},
		0x9f73: {"SMS Originating Restrictions", paramSMSOriginationRestrictions},
		0x9f74: {"SMS Teleservice Identifier", paramSMSTeleserviceIdentifier},
		0x9f75: {"SMS Termination Restrictions", paramSMSTerminationRestrictions},
		0x9f76: {"SMS Message Waiting Indicator", nullParam},
		0x9f77: {"Termination Access Type", paramTerminationAccessType},
		0xbf78: {"Termination List", paramList},
		0x9f79: {"Termination Treatment", enumParam("Value", terminationTreatmentNames)},
		0x9f7a: {"Termination Triggers", paramTerminationTriggers},
		0x9f7b: {"Transaction Capability", paramTransactionCapability},
		0x9f7c: {"Unique Challenge Report", enumParam("Report", updateReportNames)},
	}

	tier3 = map[uint32]paramEntry{
		0x9f8100: {"Action Code", enumParam("Action Code", actionCodeNames)},
		0x9f8101: {"Alert Result", enumParam("Result", alertResultNames)},
		0xbf8102: {"Announcement List", paramList},
		0xbf8103: {"CDMA Code Channel Information", paramList},
		0xbf8104: {"CDMA Code Channel List", paramList},
		0xbf8105: {"CDMA Target Measurement Information", paramList},
		0xbf8106: {"CDMA Target Measurement List", paramList},
		0xbf8107: {"CDMA Target MAHO Information", paramList},
		0xbf8108: {"CDMA Target MAHO List", paramList},
		0x9f8109: {"Conference Calling Indicator", paramConferenceCallingIndicator},
		0x9f810a: {"Count Update Report", enumParam("Report", updateReportNames)},
		0x9f810b: {"Digit Collection Control", paramDigitCollectionControl},
		0x9f810c: {"DMH Account Code Digits", paramDigits},
		0x9f810d: {"DMH Alternate Billing Digits", paramDigits},
		0x9f810e: {"DMH Billing Digits", paramDigits},
		0x9f810f: {"Geographic Authorization", enumParam("Authorization", geographicAuthorizationNames)},
		0x9f8110: {"Leg Information", paramLegInformation},
		0x9f8111: {"Message Waiting Notification Type", paramOneTimeFeatureIndicator},
		0x9f8112: {"PACA Indicator", paramPACAIndicator},
		0x9f8113: {"Preferred Language Indicator", paramPreferredLanguageIndicator},
		0x9f8114: {"Random Valid Time", paramRandomValidTime},
		0x9f8115: {"Restriction Digits", paramRestrictionDigits},
		0x9f8116: {"Routing Digits", paramDigits},
		0x9f8117: {"Setup Result", paramSetupResult},
		0x9f8118: {"SMS Access Denied Reason", paramSMSAccessDeniedReason},
		0x9f8119: {"SMS Cause Code", paramSMSCauseCode},
		0x9f811a: {"SPINI PIN", paramDigits},
		0x9f811b: {"SPINI Triggers", paramOriginationTriggers},
		0x9f811c: {"SSD Update Report", enumParam("Report", updateReportNames)},
		0xbf811d: {"Target Measurement Information", paramList},
		0xbf811e: {"Target Measurement List", paramList},
		0x9f811f: {"Voice Mailbox PIN", paramDigits},
		0x9f8120: {"Voice Mailbox Number", paramDigits},
		0x9f8121: {"Authentication Data", paramAuthenticationData},
		0x9f8122: {"Conditionally Denied Reason", enumParam("Reason", conditionallyDeniedReasonNames)},
		0x9f8123: {"Group Information", paramGroupInformation},
		0x9f8124: {"Handoff State", paramHandoffState},
		0x9f8125: {"NAMPS Call Mode", enumParam("Call Mode", nampsCallModeNames)},
		0x9f8126: {"CDMA Slot Cycle Index", paramCDMASlotCycleIndex},
		0x9f8127: {"Denied Authorization Period", paramDeniedAuthorizationPeriod},
		0x9f8128: {"Pilot Number", paramDigits},
		0x9f8129: {"Pilot Billing ID", paramPilotBillingID},
		0x9f812a: {"CDMA Band Class", paramCDMABandClass},
		0xbf812b: {"CDMA Band Class Information", paramList},
		0xbf812c: {"CDMA Band Class List", paramList},
		0x9f812d: {"CDMA Pilot PN", paramCDMAPilotPN},
		0x9f812e: {"CDMA Service Configuration Record", octetParam("Record")},
		0x9f812f: {"CDMA Service Option", paramCDMAServiceOption},
		0xbf8130: {"CDMA Service Option List", paramList},
		0x9f8131: {"CDMA Station Class Mark 2", octetParam("Class Mark")},
		0x9f8132: {"TDMA Service Code", enumParam("Service Code", tdmaServiceCodeNames)},
		0x9f8133: {"TDMA Terminal Capability", octetParam("Capability")},
		0x9f8134: {"TDMA Voice Coder", octetParam("Voice Coder")},
		0x9f8135: {"A-Key Protocol Version", paramAKeyProtocolVersion},
		0x9f8136: {"Authentication Response Reauthentication", paramAuthResponse},
		0x9f8137: {"Base Station Partial Key", octetParam("Key")},
		0x9f8138: {"Mobile Station MIN", paramMIN},
		0x9f8139: {"Mobile Station Partial Key", octetParam("Key")},
		0x9f813a: {"Modulus Value", octetParam("Value")},
		0x9f813b: {"Newly Assigned MIN", paramMIN},
		0x9f813c: {"Newly Assigned MSID", octetParam("MSID")},
		0x9f813d: {"OTASP Result Code", paramOTASPResultCode},
		0x9f813e: {"Primitive Value", octetParam("Value")},
		0x9f813f: {"Random Variable Reauthentication", paramRandomVariable(4, "RANDRA")},
		0x9f8140: {"Reauthentication Report", paramReauthenticationReport},
		0x9f8141: {"Service Indicator", paramServiceIndicator},
		0x9f8142: {"Signaling Message Encryption Report", paramSignalingMessageEncryptionReport},
		0x9f8143: {"Temporary Reference Number", paramTemporaryReferenceNumber},
		0x9f8144: {"Voice Privacy Report", paramVoicePrivacyReport},
		0x9f8145: {"Base Station Manufacturer Code", octetParam("Code")},
		0x9f8146: {"BSMC Status", enumParam("Status", bsmcStatusNames)},
		0x9f8147: {"Control Channel Mode", enumParam("Mode", controlChannelModeNames)},
		0x9f8148: {"Non Public Data", octetParam("Data")},
		0x9f8149: {"Paging Frame Class", uintParam(1, "Paging Frame Class")},
		0xbf814a: {"PSID RSID Information", paramList},
		0xbf814b: {"PSID RSID List", paramList},
		0x9f814c: {"Services Result", octetParam("Result")},
		0x9f814d: {"SOC Status", octetParam("Status")},
		0x9f814e: {"System Operator Code", uintParam(2, "System Operator Code")},
		0xbf814f: {"Target Cell ID List", paramList},
		0x9f8150: {"User Group", octetParam("User Group")},
		0x9f8151: {"User Zone Data", octetParam("Data")},
		0x9f8152: {"CDMA Connection Reference", uintParam(1, "Connection Reference")},
		0xbf8153: {"CDMA Connection Reference Information", paramList},
		0xbf8154: {"CDMA Connection Reference List", paramList},
		0x9f8155: {"CDMA State", octetParam("State")},
		0x9f8156: {"Change Service Attributes", octetParam("Attributes")},
		0x9f8157: {"Data Key", octetParam("Key")},
		0xbf8158: {"Data Privacy Parameters", paramList},
		0x9f8159: {"ISLP Information", octetParam("Information")},
		0x9f815a: {"Reason List", octetParam("Reasons")},
		0x9f815b: {"Second Inter MSC Circuit ID", paramInterMSCCircuitID},
		0x9f815c: {"TDMA Bandwidth", paramTDMABandwidth},
		0x9f815d: {"TDMA Data Features Indicator", octetParam("Indicator")},
		0x9f815e: {"TDMA Data Mode", octetParam("Mode")},
		0x9f815f: {"TDMA Voice Mode", octetParam("Mode")},
		0x9f8160: {"Analog Redirect Info", octetParam("Info")},
		0xbf8161: {"Analog Redirect Record", paramList},
		0x9f8162: {"CDMA Channel Number", paramCDMAChannelNumber},
		0xbf8163: {"CDMA Channel Number List", paramList},
		0x9f8164: {"CDMA Power Combined Indicator", enumParam("Indicator", cdmaPowerCombinedNames)},
		0xbf8165: {"CDMA Redirect Record", paramList},
		0x9f8166: {"CDMA Search Parameters", octetParam("Parameters")},
		0x9f8168: {"CDMA Network Identification", uintParam(2, "NID")},
		0x9f8169: {"Network TMSI", octetParam("TMSI")},
		0x9f816a: {"Network TMSI Expiration Time", uintParam(4, "Expiration Time")},
		0x9f816b: {"New Network TMSI", octetParam("TMSI")},
		0x9f816c: {"Required Parameters Mask", octetParam("Mask")},
		0x9f816d: {"Service Redirection Cause", enumParam("Cause", serviceRedirectionCauseNames)},
		0x9f816e: {"Service Redirection Info", octetParam("Info")},
		0x9f816f: {"Roaming Indication", enumParam("Indication", roamingIndicationNames)},
		0x9f8170: {"Emergency Services Routing Digits", paramDigits},
		0x9f8172: {"IMSI", paramIMSI},
		0x9f8173: {"Calling Party Name", paramCallingPartyName},
		0x9f8174: {"Display Text", ia5Param("Display Text")},
		0x9f8175: {"Redirecting Party Name", paramCallingPartyName},
		0x9f8176: {"Service ID", octetParam("Service ID")},
		0x9f8177: {"All Or None", paramAllOrNone},
		0x9f8178: {"Change", paramChange},
		0xbf8179: {"Data Access Element", paramList},
		0xbf817a: {"Data Access Element List", paramList},
		0x9f817b: {"Data ID", octetParam("Data ID")},
		0x9f817c: {"Database Key", octetParam("Key")},
		0x9f817d: {"Data Result", paramDataResult},
		0xbf817e: {"Data Update Result", paramList},
		0xbf817f: {"Data Update Result List", paramList},
		0x9f8200: {"Data Value", octetParam("Value")},
		0xbf8202: {"Execute Script", paramList},
		0x9f8203: {"Failure Cause", paramFailureCause},
		0x9f8204: {"Failure Type", paramFailureType},
		0x9f8205: {"Global Title", paramGlobalTitle},
		0xbf8206: {"Modification Request", paramList},
		0xbf8207: {"Modification Request List", paramList},
		0xbf8208: {"Modification Result List", paramList},
		0x9f8209: {"Private Specialized Resource", paramPrivateSpecializedResource},
		0x9f820a: {"Script Argument", octetParam("Argument")},
		0x9f820b: {"Script Name", ia5Param("Script Name")},
		0x9f820c: {"Script Result", paramScriptResult},
		0xbf820d: {"Service Data Access Element", paramList},
		0xbf820e: {"Service Data Access Element List", paramList},
		0xbf820f: {"Service Data Result", paramList},
		0xbf8210: {"Service Data Result List", paramList},
		0x9f8211: {"Specialized Resource", paramSpecializedResource},
		0x9f8212: {"Time Date Offset", paramTimeDateOffset},
		0x9f8213: {"Time Of Day", paramTimeOfDay},
		0x9f8214: {"Trigger Capability", paramTriggerCapability},
		0x9f8215: {"Trigger Type", paramTriggerType},
		0xbf8216: {"WIN Capability", paramList},
		0x9f8217: {"WIN Operations Capability", paramWINOperationsCapability},
		0xbf8218: {"Trigger Address List", paramList},
		0xbf8219: {"Trigger List", paramList},
		0xbf821a: {"Call Recovery ID", paramList},
		0xbf821b: {"Call Recovery ID List", paramList},
		0x9f821d: {"Suspicious Access", enumParam("Access", suspiciousAccessNames)},
		0x9f821e: {"Mobile Station IMSI", paramIMSI},
		0x9f821f: {"Newly Assigned IMSI", paramIMSI},
		0x9f822b: {"Display Text 2", octetParam("Display Text")},
		0x9f822c: {"Page Count", uintParam(1, "Page Count")},
		0x9f822d: {"Page Response Time", uintParam(1, "Seconds")},
		0x9f822e: {"SMS Transaction ID", octetParam("Transaction ID")},
		0x9f8231: {"DMH Service ID", octetParam("Service ID")},
		0x9f8232: {"Feature Indicator", uintParam(1, "Feature")},
		0x9f8233: {"Control Network ID", octetParam("Network ID")},
		0x9f8234: {"Release Cause", enumParam("Cause", releaseCauseNames)},
		0x9f8236: {"Call Status", enumParam("Status", callStatusNames)},
		0x9f8237: {"DMH Charge Information", octetParam("Charge")},
		0x9f8238: {"DMH Billing Indicator", octetParam("Indicator")},
		0x9f8239: {"MS Status", octetParam("Status")},
		0x9f823b: {"Position Information Code", octetParam("Code")},
		0x9f823c: {"CAVE Key", octetParam("Key")},
		0x9f8240: {"Geographic Position", octetParam("Position")},
		0x9f8241: {"CDMA2000 Mobile Supported Capabilities", octetParam("Capabilities")},
		0x9f8245: {"Inter Message Time", uintParam(1, "Seconds")},
		0x9f8247: {"MSID Usage", enumParam("Usage", msidUsageNames)},
		0x9f8248: {"New MIN Extension", octetParam("Extension")},
		0x9f824a: {"CDMA Mobile Capabilities", octetParam("Capabilities")},
		0x9f824f: {"Mobile Position Capability", octetParam("Capability")},
		0x9f8251: {"Position Request Type", enumParam("Type", positionRequestTypeNames)},
		0x9f8252: {"Position Result", enumParam("Result", positionResultNames)},
		0x9f8253: {"Position Source", enumParam("Source", positionSourceNames)},
		0x9f8254: {"ACG Encountered", octetParam("Encountered")},
		0x9f8255: {"Control Type", enumParam("Type", controlTypeNames)},
		0x9f8256: {"Gap Duration", uintParam(1, "Duration")},
		0x9f8257: {"SCF Overload Gap Interval", uintParam(1, "Interval")},
		0x9f8258: {"Service Management System Gap Interval", uintParam(1, "Interval")},
		0x9f8259: {"CDMA PSMM Count", uintParam(1, "Count")},
		0x9f825b: {"CDMA Serving One Way Delay 2", octetParam("Delay")},
		0x9f825c: {"QoS Priority", uintParam(1, "Priority")},
		0x9f825f: {"CDMA MS Measured Channel Identity", octetParam("Identity")},
		0x9f8264: {"CDMA2000 Handoff Invoke IOS Data", octetParam("IOS Data")},
		0x9f8265: {"CDMA2000 Handoff Response IOS Data", octetParam("IOS Data")},
		0x9f8269: {"CDMA Service Option Connection Identifier", uintParam(1, "Identifier")},
		0x9f826f: {"LIR Authorization", octetParam("Authorization")},
		0x9f8270: {"LIR Mode", enumParam("Mode", lirModeNames)},
		0x9f8272: {"MPC Address", paramDigits},
		0xbf8273: {"MPC Address List", paramList},
		0x9f8274: {"MPC ID", octetParam("MPC ID")},
	}
}
