package services

import (
	"Alkhabir/models"
	"fmt"
)

const analyzePrompt = `أنت مستشار قانوني مغربي خبير. قم بتحليل الوقائع المقدمة لك تحليلاً قانونياً أكاديمياً ورصيناً.
يجب أن يكون الرد بصيغة JSON فقط، وبدون أي نص إضافي خارج كائن JSON.
البنية المطلوبة للرد (JSON structure):
{
  "نوع_القضية": "تصنيف دقيق (مثلاً: مدني - عقاري)",
  "الوقائع_الجوهرية": [ "قائمة بالوقائع" ],
  "التكييف_القانوني": [ "الإشكاليات القانونية" ],
  "النصوص_القانونية_ذات_الصلة": [ "الفصول القانونية" ],
  "العناصر_المادية_والمعنوية": [ "التحليل" ],
  "الدفاعات_الممكنة": [ "الحجج" ],
  "سوابق_قضائية_مغربية_محتملة": [ "الاجتهادات القضائية" ],
  "الإجراءات_المقترحة": [ "الخطوات العملية" ],
  "تحليل_النازلة": "تحليل مفصل"
}`

const questionPrompt = `تصرف كمحامٍ وخبير قانوني مغربي، وأستاذ جامعي.
عند الإجابة على أي سؤال:
1. ضع الموضوع في سياقه القانوني المغربي.
2. استشهد بالفصول والمواد القانونية بدقة.
3. اذكر الاجتهادات القضائية إن وجدت.
4. إذا لم يوجد نص صريح، قل ذلك بوضوح.
اجعل إجابتك مهنية، دقيقة، ومباشرة.`

const suggestPrompt = `أنت مستشار قانوني ذكي. بناءً على المعطيات التالية، اقترح 5 إلى 7 أسئلة قانونية دقيقة تساعد على توضيح القضية.
اكتب فقط الأسئلة، كل سؤال في سطر جديد، بدون مقدمات أو ترقيم.`

const ocrPrompt = `أنت خبير في النسخ الرقمي (OCR). استخرج النص العربي من الصورة بدقة.`

// OCRFallbackInstruction is sent with an image when the caller gave no text.
const OCRFallbackInstruction = "استخرج النص من هذه الصورة."

// ProfileTable maps every RequestType to its PromptProfile. It is built once
// at startup and only read afterwards.
type ProfileTable map[models.RequestType]models.PromptProfile

// NewProfileTable builds the table for the given text and vision models.
func NewProfileTable(textModel, visionModel string) ProfileTable {
	return ProfileTable{
		models.RequestAnalyze:  {SystemPrompt: analyzePrompt, Model: textModel, ExpectsJSON: true},
		models.RequestQuestion: {SystemPrompt: questionPrompt, Model: textModel},
		models.RequestSuggest:  {SystemPrompt: suggestPrompt, Model: textModel},
		models.RequestOCR:      {SystemPrompt: ocrPrompt, Model: visionModel},
	}
}

func (t ProfileTable) Lookup(rt models.RequestType) (models.PromptProfile, bool) {
	p, ok := t[rt]
	return p, ok
}

// Check fails when a supported RequestType has no profile.
func (t ProfileTable) Check() error {
	for _, rt := range models.RequestTypes {
		p, ok := t[rt]
		if !ok {
			return fmt.Errorf("no prompt profile for request type %q", rt)
		}
		if p.Model == "" || p.SystemPrompt == "" {
			return fmt.Errorf("incomplete prompt profile for request type %q", rt)
		}
	}
	return nil
}
