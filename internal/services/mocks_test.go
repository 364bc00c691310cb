package services

import (
	"context"
	"fmt"
	"sync"

	"joonbee_backend/internal/models"
	"joonbee_backend/internal/repositories"
)

// In-memory fakes for the repository interfaces. Maps keyed the same way the
// tables are, guarded for the toggle/race tests.

type memMemberRepo struct {
	mu      sync.Mutex
	members map[string]*models.Member

	interviewCount int64
	categoryCounts []repositories.CategoryCountRow
}

func newMemMemberRepo(members ...*models.Member) *memMemberRepo {
	r := &memMemberRepo{members: map[string]*models.Member{}}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *memMemberRepo) FindByID(_ context.Context, id string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, repositories.ErrMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *memMemberRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.members[id]
	return ok, nil
}

func (r *memMemberRepo) Create(_ context.Context, member *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[member.ID]; ok {
		return fmt.Errorf("duplicate member %s", member.ID)
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *memMemberRepo) ExistsByNickName(_ context.Context, nickName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.NickName == nickName {
			return true, nil
		}
	}
	return false, nil
}

func (r *memMemberRepo) UpdateNickName(_ context.Context, id, nickName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return repositories.ErrMemberNotFound
	}
	m.NickName = nickName
	return nil
}

func (r *memMemberRepo) Info(ctx context.Context, id string) (*repositories.MemberInfoRow, error) {
	m, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &repositories.MemberInfoRow{
		ID:             m.ID,
		Thumbnail:      m.Thumbnail,
		NickName:       m.NickName,
		Email:          m.Email,
		InterviewCount: r.interviewCount,
	}, nil
}

func (r *memMemberRepo) CategoryQuestionCounts(context.Context, string) ([]repositories.CategoryCountRow, error) {
	return r.categoryCounts, nil
}

type likeKey struct {
	memberID    string
	interviewID int64
}

type memLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]struct{}
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[likeKey]struct{}{}}
}

func (r *memLikeRepo) Exists(_ context.Context, memberID string, interviewID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.likes[likeKey{memberID, interviewID}]
	return ok, nil
}

func (r *memLikeRepo) Insert(_ context.Context, memberID string, interviewID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes[likeKey{memberID, interviewID}] = struct{}{}
	return nil
}

func (r *memLikeRepo) Delete(_ context.Context, memberID string, interviewID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes, likeKey{memberID, interviewID})
	return nil
}

func (r *memLikeRepo) CountByInterview(_ context.Context, interviewID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.likes {
		if key.interviewID == interviewID {
			count++
		}
	}
	return count, nil
}

type cartKey struct {
	memberID   string
	questionID int64
}

type memCartRepo struct {
	mu      sync.Mutex
	entries map[cartKey]*models.Cart
	nextID  int64

	// questions, when set, receives member-authored rows the same way the
	// real transactional insert lands them in the question table.
	questions *fakeQuestionRepo
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{entries: map[cartKey]*models.Cart{}, nextID: 1000}
}

func (r *memCartRepo) CountByMember(_ context.Context, memberID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.entries {
		if key.memberID == memberID {
			count++
		}
	}
	return count, nil
}

func (r *memCartRepo) ListByMember(context.Context, string, int, int) ([]repositories.CartQuestionRow, error) {
	return nil, nil
}

func (r *memCartRepo) CountByMemberAndSubcategories(context.Context, string, []string) (int64, error) {
	return 0, nil
}

func (r *memCartRepo) ListByMemberAndSubcategories(context.Context, string, []string, int, int) ([]repositories.CartQuestionRow, error) {
	return nil, nil
}

func (r *memCartRepo) CountByMemberAndSubcategory(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (r *memCartRepo) ListByMemberAndSubcategory(context.Context, string, string, int, int) ([]repositories.CartQuestionRow, error) {
	return nil, nil
}

func (r *memCartRepo) Exists(_ context.Context, memberID string, questionID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[cartKey{memberID, questionID}]
	return ok, nil
}

func (r *memCartRepo) Insert(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[cartKey{cart.MemberID, cart.QuestionID}] = cart
	return nil
}

func (r *memCartRepo) InsertWithNewQuestion(_ context.Context, question *models.Question, memberID, subcategoryName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	question.ID = r.nextID
	r.entries[cartKey{memberID, question.ID}] = &models.Cart{
		MemberID:     memberID,
		QuestionID:   question.ID,
		CategoryName: subcategoryName,
	}
	if r.questions != nil {
		r.questions.questions[question.ID] = repositories.QuestionCheckRow{
			QuestionID:      question.ID,
			Subcategory:     subcategoryName,
			QuestionContent: question.Content,
		}
	}
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, memberID string, questionID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := cartKey{memberID, questionID}
	if _, ok := r.entries[key]; !ok {
		return false, nil
	}
	delete(r.entries, key)
	return true, nil
}

// fakeQuestionRepo serves a fixed catalogue.
type fakeQuestionRepo struct {
	questions map[int64]repositories.QuestionCheckRow
	picks     []repositories.QuestionPickRow
}

func (r *fakeQuestionRepo) CountGenerated(context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

func (r *fakeQuestionRepo) ListGenerated(context.Context, int, int) ([]repositories.QuestionWithCategoryRow, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) CountGeneratedByUpper(context.Context, int64) (int64, error) {
	return 0, nil
}

func (r *fakeQuestionRepo) ListGeneratedByUpper(context.Context, int64, int, int) ([]repositories.QuestionWithCategoryRow, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) CountGeneratedBySubcategory(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *fakeQuestionRepo) ListGeneratedBySubcategory(context.Context, string, int, int) ([]repositories.QuestionWithCategoryRow, error) {
	return nil, nil
}

func (r *fakeQuestionRepo) RandomGeneratedBySubcategories(_ context.Context, _ []string, count int) ([]repositories.QuestionPickRow, error) {
	if count > len(r.picks) {
		count = len(r.picks)
	}
	return r.picks[:count], nil
}

func (r *fakeQuestionRepo) RandomGeneratedByUpper(_ context.Context, _ int64, count int) ([]repositories.QuestionPickRow, error) {
	if count > len(r.picks) {
		count = len(r.picks)
	}
	return r.picks[:count], nil
}

func (r *fakeQuestionRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.questions[id]
	return ok, nil
}

func (r *fakeQuestionRepo) ExistsByContent(_ context.Context, content string) (bool, error) {
	for _, row := range r.questions {
		if row.QuestionContent == content {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeQuestionRepo) ListByIDs(_ context.Context, ids []int64) ([]repositories.QuestionCheckRow, error) {
	rows := make([]repositories.QuestionCheckRow, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.questions[id]; ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *fakeQuestionRepo) ContentAndSubcategory(_ context.Context, id int64) (*repositories.QuestionCheckRow, error) {
	row, ok := r.questions[id]
	if !ok {
		return nil, repositories.ErrQuestionNotFound
	}
	return &row, nil
}

// fakeInterviewRepo returns canned pages and records the fan-out calls.
type fakeInterviewRepo struct {
	total        int64
	listRows     []repositories.InterviewListRow
	questionRows []repositories.InterviewQuestionRow
	fanOutCalls  int

	ownedRows     []repositories.InterviewDetailRow
	detailRows    []repositories.InterviewDetailRow
	deleteOutcome bool
}

func (r *fakeInterviewRepo) Count(context.Context, string) (int64, error) {
	return r.total, nil
}

func (r *fakeInterviewRepo) List(context.Context, repositories.InterviewFilter) ([]repositories.InterviewListRow, error) {
	return r.listRows, nil
}

func (r *fakeInterviewRepo) QuestionsByInterviewIDs(context.Context, []int64) ([]repositories.InterviewQuestionRow, error) {
	r.fanOutCalls++
	return r.questionRows, nil
}

func (r *fakeInterviewRepo) DetailRows(context.Context, int64) ([]repositories.InterviewDetailRow, error) {
	return r.detailRows, nil
}

func (r *fakeInterviewRepo) OwnedDetailRows(context.Context, int64, string) ([]repositories.InterviewDetailRow, error) {
	return r.ownedRows, nil
}

func (r *fakeInterviewRepo) CreateWithQuestions(_ context.Context, interview *models.Interview, _ []models.InterviewAndQuestion) error {
	interview.ID = 1
	return nil
}

func (r *fakeInterviewRepo) DeleteOwned(context.Context, int64, string) (bool, error) {
	return r.deleteOutcome, nil
}

func (r *fakeInterviewRepo) CountByMember(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *fakeInterviewRepo) CategoryPageByMember(context.Context, string, int, int) ([]repositories.InterviewCategoryRow, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) CountLikedByMember(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *fakeInterviewRepo) CategoryPageByLiked(context.Context, string, int, int) ([]repositories.InterviewCategoryRow, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) QuestionDetail(context.Context, int64, int64, string) (*repositories.InterviewQuestionDetailRow, error) {
	return nil, repositories.ErrInterviewNotFound
}

// fakeCategoryRepo mirrors the seeded taxonomy.
type fakeCategoryRepo struct {
	tops map[string]*models.Category
	subs map[string]*models.Category

	groupedRows []repositories.GroupedCategoryRow
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		tops: map[string]*models.Category{},
		subs: map[string]*models.Category{},
	}
	var id int64 = 1
	for _, name := range []string{"fe", "be", "language", "cs", "mobile", "etc"} {
		r.tops[name] = &models.Category{ID: id, Name: name, Level: models.CategoryLevelTop}
		id++
	}
	add := func(name, parent string) {
		r.subs[name] = &models.Category{ID: id, Name: name, Level: models.CategoryLevelSub, UpperID: r.tops[parent].ID}
		id++
	}
	add("react", "fe")
	add("vue", "fe")
	add("spring", "be")
	add("network", "cs")
	return r
}

func (r *fakeCategoryRepo) FindTopCategory(_ context.Context, name string) (*models.Category, error) {
	return r.tops[name], nil
}

func (r *fakeCategoryRepo) FindSubcategory(_ context.Context, name string) (*models.Category, error) {
	return r.subs[name], nil
}

func (r *fakeCategoryRepo) SubcategoryNames(_ context.Context, upperID int64) ([]string, error) {
	var names []string
	for name, sub := range r.subs {
		if sub.UpperID == upperID {
			names = append(names, name)
		}
	}
	return names, nil
}

func (r *fakeCategoryRepo) GroupedTree(context.Context) ([]repositories.GroupedCategoryRow, error) {
	return r.groupedRows, nil
}
