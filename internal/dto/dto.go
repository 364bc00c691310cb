package dto

// PageResponse is the shared list envelope: total rows matching the filter
// plus one page of results.
type PageResponse[T any] struct {
	Total  int64 `json:"total"`
	Result []T   `json:"result"`
}

// --- category ---

type CategoryNode struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type CategoryGroup struct {
	ID       string         `json:"id"`
	Value    string         `json:"value"`
	Children []CategoryNode `json:"children"`
}

// --- question ---

type QuestionListItem struct {
	QuestionID      int64  `json:"questionId"`
	CategoryID      int64  `json:"categoryId"`
	CategoryName    string `json:"categoryName"`
	SubcategoryName string `json:"subcategoryName"`
	QuestionContent string `json:"questionContent"`
}

type DrawnQuestion struct {
	QuestionID      int64  `json:"questionId"`
	QuestionContent string `json:"questionContent"`
}

// DrawResponse echoes the requester and category along with the random draw.
type DrawResponse struct {
	MemberID string          `json:"memberId"`
	Category string          `json:"category"`
	Result   []DrawnQuestion `json:"result"`
}

type CheckedQuestion struct {
	QuestionID      int64  `json:"questionId"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	QuestionContent string `json:"questionContent"`
}

type CheckedQuestionsResponse struct {
	Result []CheckedQuestion `json:"result"`
}

// --- interview ---

type InterviewQuestionItem struct {
	QuestionID      int64  `json:"questionId"`
	QuestionContent string `json:"questionContent"`
}

// InterviewListItem is one feed row. Liked is a pointer so anonymous callers
// get no liked field at all instead of a defaulted false.
type InterviewListItem struct {
	InterviewID     int64                   `json:"interviewId"`
	Liked           *bool                   `json:"liked,omitempty"`
	MemberID        string                  `json:"memberId"`
	Nickname        string                  `json:"nickname"`
	Thumbnail       string                  `json:"thumbnail"`
	CategoryName    string                  `json:"categoryName"`
	LikeCount       int64                   `json:"likeCount"`
	Questions       []InterviewQuestionItem `json:"questions"`
	SubcategoryName []string                `json:"subcategoryName"`
}

type AnsweredQuestion struct {
	QuestionID      int64  `json:"questionId"`
	QuestionContent string `json:"questionContent"`
	Commentary      string `json:"commentary"`
	Evaluation      string `json:"evaluation"`
	AnswerContent   string `json:"answerContent"`
}

// InterviewInfoResponse is the public detail view: no GPT opinion.
type InterviewInfoResponse struct {
	MemberThumbnail  string             `json:"memberThumbnail"`
	MemberNickName   string             `json:"memberNickName"`
	QuestionContents []AnsweredQuestion `json:"questionContents"`
	CategoryName     string             `json:"categoryName"`
	LikeCount        int64              `json:"likeCount"`
}

// InterviewDetailResponse is the owner's view including the GPT opinion.
type InterviewDetailResponse struct {
	GPTOpinion       string             `json:"gptOpinion"`
	CreatedAt        string             `json:"createdAt"`
	QuestionContents []AnsweredQuestion `json:"questionContents"`
}

type InterviewQuestionDetailResponse struct {
	InterviewID     int64  `json:"interviewId"`
	QuestionID      int64  `json:"questionId"`
	AnswerContent   string `json:"answerContent"`
	Commentary      string `json:"commentary"`
	Evaluation      string `json:"evaluation"`
	QuestionContent string `json:"questionContent"`
}

// --- member ---

type CategoryInfo struct {
	CategoryName  string `json:"categoryName"`
	CategoryCount int64  `json:"categoryCount"`
}

type MyInfoResponse struct {
	ID             string         `json:"id"`
	Thumbnail      string         `json:"thumbnail"`
	NickName       string         `json:"nickName"`
	Email          *string        `json:"email"`
	InterviewCount int64          `json:"interviewCount"`
	QuestionCount  int64          `json:"questionCount"`
	CategoryInfo   []CategoryInfo `json:"categoryInfo"`
}

type ProfileResponse struct {
	Image    string `json:"image"`
	NickName string `json:"nickName"`
}

type InterviewCategoryItem struct {
	CategoryName  string `json:"categoryName"`
	QuestionCount int64  `json:"questionCount"`
	InterviewID   int64  `json:"interviewId"`
}

type CartItem struct {
	QuestionID      int64  `json:"questionId"`
	QuestionContent string `json:"questionContent"`
}

// --- cart ---

type CartQuestionItem struct {
	QuestionID      int64  `json:"questionId"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	QuestionContent string `json:"questionContent"`
}

// --- requests ---

type NickNameUpdateRequest struct {
	ID       string `json:"id" validate:"required"`
	NickName string `json:"nickName" validate:"required"`
}

type AnswerItem struct {
	QuestionID    int64  `json:"questionId" validate:"required"`
	AnswerContent string `json:"answerContent"`
	Commentary    string `json:"commentary"`
	Evaluation    string `json:"evaluation"`
}

type InterviewSaveRequest struct {
	CategoryName string       `json:"categoryName" validate:"required,topcategory"`
	GPTOpinion   string       `json:"gptOpinion"`
	Questions    []AnswerItem `json:"questions" validate:"required,min=1,dive"`
}

type LikeRequest struct {
	InterviewID int64 `json:"interviewId" validate:"required"`
}

// MemberCartInsertRequest adds an existing question; CategoryName carries the
// subcategory snapshot stored on the cart row.
type MemberCartInsertRequest struct {
	QuestionID   int64  `json:"questionId" validate:"required"`
	CategoryName string `json:"categoryName" validate:"required"`
}

// CartQuestionSaveRequest either references an existing question (QuestionID
// set) or creates a new one from QuestionContent.
type CartQuestionSaveRequest struct {
	QuestionID      *int64 `json:"questionId"`
	CategoryName    string `json:"categoryName" validate:"required,topcategory"`
	SubcategoryName string `json:"subcategoryName" validate:"required"`
	QuestionContent string `json:"questionContent" validate:"required"`
}
