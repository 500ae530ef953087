package content

// StepKind tags one delivery step of a section script.
type StepKind int

const (
	StepText StepKind = iota
	StepPhoto
	StepVideo
)

// Step is one message of a section: a plain text, or a media file with
// an optional caption.
type Step struct {
	Kind  StepKind
	File  string // file name under the media directory, media steps only
	Body  string // message text or media caption
	Plain bool   // send without HTML parse mode
	Home  bool   // attach the "return to menu" button to this step
}

// Script is the fixed ordered list of steps for one menu section.
type Script []Step

var scripts = map[Action]Script{
	ActionWaterFacts: {
		{Kind: StepPhoto, File: "2.jpg", Body: waterFacts1Text},
		{Kind: StepVideo, File: "1.MP4", Body: waterFactsBloodVideoText},
		{Kind: StepPhoto, File: "3.jpg", Body: waterFacts2Text},
		{Kind: StepVideo, File: "2.MP4", Body: waterFacts3VideoText},
		{Kind: StepVideo, File: "4.MP4", Home: true},
	},
	ActionReasons46: {
		// The caption exceeds the Telegram limit on purpose: the overflow
		// continues as follow-up messages and carries the menu button.
		{Kind: StepPhoto, File: "4.jpg", Body: reasons46Text, Home: true},
	},
	ActionDehydration: {
		{Kind: StepVideo, File: "5.MP4", Body: dehydrationVideo5Text},
		{Kind: StepVideo, File: "6.MP4", Body: dehydrationVideo6Text},
		{Kind: StepPhoto, File: "5.jpg", Body: dehydrationQuizText},
		{Kind: StepVideo, File: "7.MP4", Home: true},
	},
	ActionQualityFull: {
		{Kind: StepText, Body: qualityIntroText},
		{Kind: StepPhoto, File: "6.jpg", Body: quality6ParamsText},
		{Kind: StepVideo, File: "8.MP4", Body: qualityTapWaterText},
		{Kind: StepText, Body: qualityNext1Text},
		{Kind: StepPhoto, File: "7.jpg", Body: qualityKettleText},
		{Kind: StepPhoto, File: "8.jpg", Body: qualityBottledText},
		{Kind: StepText, Body: qualityNext2Text},
		{Kind: StepPhoto, File: "9.jpg", Body: qualitySurfaceTensionText},
		{Kind: StepPhoto, File: "10.jpg", Body: qualitySurfaceTensionExamplesText},
		{Kind: StepPhoto, File: "11.jpg", Body: qualityStructureText},
		{Kind: StepText, Body: qualityNext3Text},
		{Kind: StepVideo, File: "9.MP4", Body: qualityVideo9Text},
		{Kind: StepText, Body: qualityNext4Text},
		{Kind: StepPhoto, File: "12.jpg", Body: qualityMineralizationText},
		{Kind: StepPhoto, File: "13.jpg", Body: qualityPHText},
		{Kind: StepPhoto, File: "14.jpg"},
		{Kind: StepPhoto, File: "15.jpg", Body: qualityOVPText},
		{Kind: StepVideo, File: "10.MP4"},
		{Kind: StepVideo, File: "11.MP4", Home: true},
	},
	ActionLiveWater: {
		{Kind: StepPhoto, File: "16.jpg", Body: ""}, // caption filled in init: linkified text
		{Kind: StepText, Body: liveWaterYoutubeText, Plain: true},
		{Kind: StepVideo, File: "12.MP4", Body: liveWaterSodaVideoText, Home: true},
	},
	ActionPromo: {
		{Kind: StepPhoto, File: "17.jpg", Body: promoText, Home: true},
	},
	ActionQualityShort: {
		{Kind: StepVideo, File: "14.MP4", Body: qualityShortEsseText, Home: true},
	},
	ActionHealthForm: {
		{Kind: StepText, Body: healthFormText, Plain: true, Home: true},
	},
	ActionConsultation: {
		{Kind: StepText, Body: consultationText, Plain: true, Home: true},
	},
}

func init() {
	// Linkify at startup so the regexp runs once, not per delivery.
	scripts[ActionLiveWater][0].Body = LinkifyWater(liveWaterMainText)
}

// ScriptFor returns the section script for a, if it has one. BackToMenu
// and Unknown are handled by the orchestrator, not by a script.
func ScriptFor(a Action) (Script, bool) {
	s, ok := scripts[a]
	return s, ok
}

// WelcomeStep is the single welcome message: photo 1.jpg with the start
// text as caption and the main menu attached.
func WelcomeStep() Step {
	return Step{Kind: StepPhoto, File: "1.jpg", Body: StartText}
}
